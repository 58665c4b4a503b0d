package grading

// Policy bundles the threshold ladders for every stat, including the ladders
// used by fallback metrics. Defaults follow the consolidated reference
// policy; each ladder can be overridden from the environment so product can
// retune grades without a redeploy.
type Policy struct {
	// Power: reputation score as a percentage, fallback on follower count.
	PowerScore     Thresholds
	PowerFollowers Thresholds
	// Speed: on-chain transaction count, fallback on lifetime cast count.
	SpeedTxns  Thresholds
	SpeedCasts Thresholds
	// Durability: lifetime cast count, no fallback.
	Durability Thresholds
	// Range: likes + recasts over the engagement sample, no fallback.
	Range Thresholds
	// Precision: weighted quality score per sampled cast, fallback on
	// follower/following ratio when nothing was sampled.
	PrecisionQuality Thresholds
	PrecisionRatio   Thresholds
}

// DefaultPolicy returns the reference thresholds.
func DefaultPolicy() Policy {
	return Policy{
		PowerScore:       NewThresholds(90, 70, 50, 30),
		PowerFollowers:   NewThresholds(5000, 1000, 200, 50),
		SpeedTxns:        NewThresholds(500, 100, 20, 5),
		SpeedCasts:       NewThresholds(5000, 2000, 500, 100),
		Durability:       NewThresholds(3000, 1000, 300, 50),
		Range:            NewThresholds(300, 100, 30, 10),
		PrecisionQuality: NewThresholds(10, 5, 2, 1),
		PrecisionRatio:   NewThresholds(5, 2, 1, 0.5),
	}
}

// Valid reports whether every ladder in the policy is well-formed.
func (p Policy) Valid() bool {
	for _, t := range []Thresholds{
		p.PowerScore, p.PowerFollowers,
		p.SpeedTxns, p.SpeedCasts,
		p.Durability, p.Range,
		p.PrecisionQuality, p.PrecisionRatio,
	} {
		if !t.Valid() {
			return false
		}
	}
	return true
}
