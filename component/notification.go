package component

// NotificationComponent is a short-lived on-screen message
type NotificationComponent struct {
	Message string
	Life    float64 // Remaining seconds
}

// Alpha is full until the last second, then fades linearly
func (n *NotificationComponent) Alpha() float64 {
	if n.Life >= 1 {
		return 1
	}
	if n.Life <= 0 {
		return 0
	}
	return n.Life
}
