package rollout

// Bucket maps a device identifier to a stable value in [0,100).  The
// accumulation is order independent over the identifier's bytes, so
// the bucket is insensitive to how callers normalize the id.
func Bucket(deviceID string) int {
	sum := 0
	for i := 0; i < len(deviceID); i++ {
		sum += int(deviceID[i])
	}
	return sum % 100
}

// InRollout reports whether the device falls inside a staged rollout
// percentage.  For a fixed device, raising the percentage only ever
// adds it to the rollout, never removes it.
func InRollout(deviceID string, percentage int) bool {
	if percentage >= 100 {
		return true
	}
	if percentage <= 0 {
		return false
	}
	return Bucket(deviceID) < percentage
}
