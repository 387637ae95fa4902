package constants

// DefaultWateringFrequencyDays is applied when the legacy export leaves the
// watering frequency empty. This is a business rule inherited from the source
// system's normalization pass, not an incidental value.
const DefaultWateringFrequencyDays = 3

// DefaultBlockType is the cultivation unit type assumed when the legacy row
// carries no type marker.
const DefaultBlockType = "greenhouse"

// DefaultCurrencyCode is used for price records whose currency field is empty.
const DefaultCurrencyCode = "USD"
