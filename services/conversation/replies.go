// File: services/conversation/replies.go
package conversation

import (
	"fmt"
	"strings"
)

// Reply texts mirror the tone of the original deployment: plain sentences,
// no markup, never empty. The customer never sees internal error detail.

const replyApology = "Oops! Something went wrong. Please try again later."

func replyUnknownService(service string, offered []string) string {
	return fmt.Sprintf("Sorry, we don't offer '%s'. Available: %s.", service, strings.Join(offered, ", "))
}

func replySlots(service string, slots []string) string {
	return fmt.Sprintf("Available %s slots today: %s.\nReply \"confirm HH:MM\" to book.", service, strings.Join(slots, ", "))
}

func replyNoSession() string {
	return `No active booking found. Please send "book <service>" first.`
}

func replySlotUnavailable(slots []string) string {
	return fmt.Sprintf("That slot isn't available. Available: %s.", strings.Join(slots, ", "))
}

func replyConfirmed(service, timeToken string) string {
	return fmt.Sprintf("Your %s is confirmed for today at %s. Thank you!", service, timeToken)
}

func replyAskService(offered []string) string {
	return fmt.Sprintf("Happy to book you in! Which service would you like? We offer: %s.", strings.Join(offered, ", "))
}

func replyAskTime(service string) string {
	return fmt.Sprintf("What time works for you? Send \"book %s\" to see today's open slots.", service)
}

func replyUseBookCommand(service string) string {
	return fmt.Sprintf("Great - send \"book %s\" and I'll show you today's available slots.", service)
}

func replyReschedule() string {
	return `To reschedule, please cancel with us and book again: send "book <service>" to see fresh slots.`
}

func replyCallbackAck() string {
	return "Got it - we'll give you a call back as soon as we can."
}

func replyDeliveryAck() string {
	return "Thanks - we've logged your delivery request and will follow up shortly."
}

func replyFAQ() string {
	return "Thanks for your question! A member of our team will get back to you with an answer."
}

func replyUnknown(offered []string) string {
	example := "haircut"
	if len(offered) > 0 {
		example = offered[0]
	}
	return fmt.Sprintf("Sorry, I didn't quite get that. Try \"book %s\" to make a booking, or ask us to call you back.", example)
}
