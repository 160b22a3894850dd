package config

// Simulation constants. Times are in milliseconds, velocities in pixels per millisecond.
const (
	// GracePeriod is how long a freshly shown craft cannot die.
	GracePeriod = 3000.0
	// FireCooldown is the minimum elapsed time between two projectiles.
	FireCooldown = 80.0
	// RespawnDelay is the wait after a death before a new craft appears.
	RespawnDelay = 3000.0

	// Hostile spawn ramp: SpawnAsymptote * n / (n + SpawnDenominator)
	SpawnDenominator = 500000.0
	SpawnAsymptote   = 0.7
	// Hostiles spawn inside the middle SpawnBand of the viewport width.
	SpawnBand = 0.8

	// Hostile sway: vx = HostileAmplitude * cos(elapsed/HostileCycle + phase)
	HostileCycle     = 200.0
	HostileAmplitude = 1.5
	// Hostile vertical speed is uniform in [HostileMinSpeed, HostileMinSpeed+HostileSpeedRange)
	HostileMinSpeed   = 0.2
	HostileSpeedRange = 1.0

	// PlayerSpeed is the horizontal speed of the craft while a direction is held.
	PlayerSpeed = 1.0
	// PlayerSpawnDepth is the fraction of the viewport height where the craft appears.
	PlayerSpawnDepth = 0.85
	// ProjectileSpeed is the upward speed of a projectile.
	ProjectileSpeed = 1.0

	// Scoreboard values
	HostileValue = 10
	PlayerValue  = 100
)
