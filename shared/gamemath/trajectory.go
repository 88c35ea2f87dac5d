package gamemath

// FlightFraction returns how far along its flight a projectile is, clamped to
// [0, 1]. A non-positive total time means the flight is already complete.
func FlightFraction(currentTime, totalTime float64) float64 {
	if totalTime <= 0 {
		return 1
	}
	return Clamp(currentTime/totalTime, 0, 1)
}

// LinearPosition interpolates along moveVec from start.
func LinearPosition(start, moveVec Vec3, t float64) Vec3 {
	return start.Add(moveVec.Scale(t))
}

// ArcHeight is the vertical position of a ballistic arc from startY to endY.
// The velocityY*t*(1-t) bump vanishes at both endpoints, so the arc always
// lands back on the straight baseline.
func ArcHeight(startY, endY, velocityY, t float64) float64 {
	return Lerp(startY, endY, t) + velocityY*t*(1-t)
}

// ArcPosition combines horizontal interpolation with ArcHeight.
func ArcPosition(start, moveVec Vec3, startY, endY, velocityY, t float64) Vec3 {
	p := LinearPosition(start, moveVec.Horizontal(), t)
	p.Y = ArcHeight(startY, endY, velocityY, t)
	return p
}

// ArcVelocity picks the arc bump for a flight covering the given horizontal
// distance. The apex sits factor*distance/4 above the baseline.
func ArcVelocity(horizontalDistance, factor float64) float64 {
	return horizontalDistance * factor
}

// FlightTime converts a distance and speed into a flight duration. A
// non-positive speed yields zero, which callers treat as an instant arrival.
func FlightTime(distance, speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	return distance / speed
}
