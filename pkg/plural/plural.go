package plural

func Slice[S ~[]E, E any](s S, suffix string) string {
	return Int(len(s), suffix)
}

func Int[T ~int | ~int64 | ~uint64](n T, suffix string) string {
	if n == 1 {
		return ""
	}
	return suffix
}
