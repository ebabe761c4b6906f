package service

import (
	"fmt"

	"github.com/stpnv0/rahi/internal/domain"
)

type recipient string

const (
	toCustomer  recipient = "customer"
	toWorker    recipient = "worker"
	toCandidate recipient = "candidate"
)

type argKind int

const (
	argCategory argKind = iota
	argOTP
	argAmount
)

type messageKey struct {
	status domain.BookingStatus
	to     recipient
}

type template struct {
	kind  domain.NotificationType
	arg   argKind
	title map[domain.Language]string
	body  map[domain.Language]string
}

// messages holds every notification text. One key may yield several notifications.
var messages = map[messageKey][]template{
	{domain.BookingStatusPending, toCustomer}: {{
		kind:  domain.NotificationBookingUpdate,
		title: texts("Booking placed", "बुकिंग हो गई"),
		body: texts("Your %s booking has been placed. We are finding a worker near you.",
			"आपकी %s बुकिंग हो गई है। हम आपके पास कारीगर ढूंढ रहे हैं।"),
	}},
	{domain.BookingStatusMatched, toCustomer}: {{
		kind:  domain.NotificationBookingUpdate,
		title: texts("Workers notified", "कारीगरों को सूचना भेजी गई"),
		body: texts("Nearby %s workers have been notified about your booking.",
			"पास के %s कारीगरों को आपकी बुकिंग की सूचना दी गई है।"),
	}},
	{domain.BookingStatusMatched, toCandidate}: {{
		kind:  domain.NotificationBookingUpdate,
		title: texts("New job nearby", "पास में नया काम"),
		body: texts("A new %s job is available near you. Accept it before someone else does.",
			"आपके पास %s का नया काम है। जल्दी स्वीकार करें।"),
	}},
	{domain.BookingStatusAccepted, toCustomer}: {
		{
			kind:  domain.NotificationBookingUpdate,
			title: texts("Booking accepted", "बुकिंग स्वीकार हुई"),
			body: texts("A %s has accepted your booking and is on the way.",
				"एक %s ने आपकी बुकिंग स्वीकार कर ली है और रास्ते में है।"),
		},
		{
			kind:  domain.NotificationOTPAlert,
			arg:   argOTP,
			title: texts("Your start OTP", "आपका OTP"),
			body: texts("Share OTP %s with the worker only when they arrive.",
				"कारीगर के पहुंचने पर ही OTP %s बताएं।"),
		},
	},
	{domain.BookingStatusAccepted, toWorker}: {{
		kind:  domain.NotificationBookingUpdate,
		title: texts("Job assigned", "काम मिल गया"),
		body: texts("You accepted a %s job. Ask the customer for the OTP on arrival.",
			"आपने %s का काम स्वीकार किया। पहुंचने पर ग्राहक से OTP लें।"),
	}},
	{domain.BookingStatusInProgress, toCustomer}: {{
		kind:  domain.NotificationWorkerArrival,
		title: texts("Worker arrived", "कारीगर पहुंच गया"),
		body: texts("Your %s has arrived and started the job.",
			"आपका %s पहुंच गया है और काम शुरू हो गया है।"),
	}},
	{domain.BookingStatusCompleted, toCustomer}: {{
		kind:  domain.NotificationJobCompletion,
		title: texts("Job completed", "काम पूरा हुआ"),
		body: texts("Your %s job is complete. Thank you for using RAHI.",
			"आपका %s का काम पूरा हो गया है। RAHI इस्तेमाल करने के लिए धन्यवाद।"),
	}},
	{domain.BookingStatusCompleted, toWorker}: {{
		kind:  domain.NotificationPaymentReceived,
		arg:   argAmount,
		title: texts("Payment received", "भुगतान प्राप्त हुआ"),
		body: texts("₹%s has been added to your wallet.",
			"₹%s आपके वॉलेट में जोड़ दिए गए हैं।"),
	}},
	{domain.BookingStatusCancelled, toCustomer}: {{
		kind:  domain.NotificationBookingUpdate,
		title: texts("Booking cancelled", "बुकिंग रद्द हुई"),
		body: texts("Your %s booking was cancelled.",
			"आपकी %s बुकिंग रद्द कर दी गई है।"),
	}},
	{domain.BookingStatusCancelled, toWorker}: {{
		kind:  domain.NotificationBookingUpdate,
		title: texts("Job cancelled", "काम रद्द हुआ"),
		body: texts("The %s job you accepted was cancelled by the customer.",
			"आपके द्वारा स्वीकार किया गया %s का काम ग्राहक ने रद्द कर दिया है।"),
	}},
}

func texts(en, hi string) map[domain.Language]string {
	return map[domain.Language]string{domain.LanguageEnglish: en, domain.LanguageHindi: hi}
}

func (t template) render(lang domain.Language, e domain.BookingEvent, category string) (title, body string) {
	if _, ok := t.title[lang]; !ok {
		lang = domain.LanguageEnglish
	}

	var arg string
	switch t.arg {
	case argOTP:
		arg = e.OTP
	case argAmount:
		arg = e.Amount.StringFixed(2)
	default:
		arg = category
	}

	return t.title[lang], fmt.Sprintf(t.body[lang], arg)
}
