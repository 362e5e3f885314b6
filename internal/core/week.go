package core

// WeekOf returns the Monday-through-Sunday window containing d,
// both ends inclusive.
func WeekOf(d Date) (start, end Date) {
	// time.Weekday counts from Sunday; shift so Monday is day zero.
	offset := (int(d.Weekday()) + 6) % 7
	start = d.AddDays(-offset)
	end = start.AddDays(6)
	return start, end
}
