package messaging

import "fmt"

const shopName = "Elite Barber Shop"

// ===============================
// Message templates
// ===============================

func ConfirmationMessage(customerName, date, timeOfDay string) string {
	return fmt.Sprintf(
		"Hi %s! Your appointment at %s is confirmed for %s at %s. We'll send you a reminder 15 minutes before. See you soon!",
		customerName, shopName, date, timeOfDay,
	)
}

func CancellationMessage(customerName, date, timeOfDay string) string {
	return fmt.Sprintf(
		"Hi %s, your appointment on %s at %s has been cancelled. Please contact us to reschedule.",
		customerName, date, timeOfDay,
	)
}

func ReminderMessage(timeOfDay string) string {
	return fmt.Sprintf(
		"Reminder: Your appointment at %s is in 15 minutes (%s). See you soon!",
		shopName, timeOfDay,
	)
}
