package crypto

// PublicKeyHashInput exposes the pre-digest string for tests.
var PublicKeyHashInput = publicKeyHashInput
