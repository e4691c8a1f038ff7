package dictation

// BadgeFor maps a final score to its award tier. Buckets are evaluated
// top-down with inclusive lower bounds, so 90 is already silver and 70
// already bronze.
func BadgeFor(score int) string {
	switch {
	case score == 100:
		return "완벽해요! 금메달 🥇"
	case score >= 90:
		return "아주 잘했어요! 은메달 🥈"
	case score >= 70:
		return "좋아요! 동메달 🥉"
	case score >= 50:
		return "조금만 더! 파이팅 💪"
	default:
		return "처음이 가장 어려워요. 다음엔 더 잘할 수 있어요 🌱"
	}
}
