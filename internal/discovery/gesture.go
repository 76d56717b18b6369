package discovery

// DefaultSwipeThreshold 拖动超过该水平偏移（像素）才算一次滑动。
const DefaultSwipeThreshold = 100.0

// ResolveGesture 将拖动结束时的水平偏移转换为滑动方向。
// 偏移必须严格超过阈值；threshold <= 0 时使用默认阈值。
func ResolveGesture(offsetX, threshold float64) Direction {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	switch {
	case offsetX > threshold:
		return DirectionRight
	case offsetX < -threshold:
		return DirectionLeft
	default:
		return DirectionNone
	}
}
