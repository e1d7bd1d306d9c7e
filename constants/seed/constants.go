package seed_constants

// Name of the fallback row guaranteed to exist in genres and publishers
// before any catalog load.
const UnknownName = "Unknown"

// Synthetic user generation defaults.
const DefaultUserCount = 50
const DefaultMinGamesPerUser = 10
const DefaultMaxGamesPerUser = 20
const DefaultConsentRate = 0.8

// Accounts expire at most this long after creation.
const MaxRetentionYears = 5
