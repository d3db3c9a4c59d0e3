package cache

import "fmt"

func AvailabilityKey(mentorID uint) string {
	return fmt.Sprintf("mentor:%d:availability", mentorID)
}

func ServicesKey(mentorID uint) string {
	return fmt.Sprintf("mentor:%d:services", mentorID)
}
