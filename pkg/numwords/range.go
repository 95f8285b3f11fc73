package numwords

// EncodeRange returns EncodeInteger for every integer in [low, high] in
// ascending order. It returns an empty slice when low > high.
func EncodeRange(low, high uint64) []string {
	if low > high {
		return []string{}
	}
	out := make([]string, 0, min(high-low, 1<<12)+1)
	for n := low; ; n++ {
		out = append(out, EncodeInteger(n))
		if n == high {
			break
		}
	}
	return out
}
