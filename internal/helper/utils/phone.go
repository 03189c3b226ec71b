package utils

// IsValidPhone reports whether phone is exactly 11 numeric digits.
func IsValidPhone(phone string) bool {
	if len(phone) != 11 {
		return false
	}
	for _, c := range phone {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// MaskPhone redacts the middle of an 11-digit phone for display,
// e.g. "13800138000" -> "138XXXXX8000". Used as the default username.
func MaskPhone(phone string) string {
	if len(phone) != 11 {
		return phone
	}
	return phone[:3] + "XXXXX" + phone[7:]
}
