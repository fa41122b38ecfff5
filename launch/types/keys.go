package types

const (
	// ModuleName defines the module name
	ModuleName = "launch"

	// BasisPointsDivisor converts basis points to a rate (100 bps = 1%)
	BasisPointsDivisor = 10_000

	// DefaultGraduationTarget is the quote-denominated collateral threshold
	// at which a market leaves the curve and hands off to an open market.
	DefaultGraduationTarget = 85.0

	// BisectionMaxIterations bounds the root search for curve inverses
	// that have no closed form. Guarantees termination.
	BisectionMaxIterations = 100

	// BisectionTolerance is the absolute convergence tolerance for the
	// root search, expressed in quote (cost) units.
	BisectionTolerance = 1e-10
)
