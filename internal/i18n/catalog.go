package i18n

import (
	"github.com/Domenick1991/alkawthar/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		"app_title":                    "Al Kawthar Flights",
		domain.CodeSelectPassenger:     "Please select a passenger",
		domain.CodeSelectFlight:        "Please select a flight",
		domain.CodeSelectClass:         "Please select a class",
		domain.CodeSelectTerminal:      "Please select a terminal",
		domain.CodeEnterSeatNumber:     "Please enter a seat number",
		domain.CodeInvalidSeatCount:    "Please enter valid number of seats",
		domain.CodeAllFieldsRequired:   "All fields are required!",
		domain.CodeInvalidFlightNumber: "Please enter a valid flight number (numbers only)",
		domain.CodeFlightExists:        "Flight %s already exists on %s!",
		domain.CodeDateFormat:          "Please use YYYY-MM-DD format for dates!",
		domain.CodeInvalidOrigin:       "Please select a valid origin airport!",
		domain.CodeInvalidDestination:  "Please select a valid destination airport!",
		domain.CodeSameAirports:        "Origin and destination airports cannot be the same!",
		domain.CodeArrivalBeforeDepart: "Arrival must be after departure!",
		domain.CodeInvalidDateTime:     "Invalid date/time: %s",
		domain.CodeInvalidGenderOrNat:  "Invalid gender or nationality",
		domain.CodePassportExists:      "Passport number already exists",
		domain.CodeMissingCredentials:  "Please enter both username and password",
		domain.CodeInvalidSelection:    "Unknown %s: %s",
		domain.CodeInvalidRequest:      "Invalid request",
	},
	language.Arabic: {
		"app_title":                    "طيران الكوثر",
		domain.CodeSelectPassenger:     "يرجى اختيار مسافر",
		domain.CodeSelectFlight:        "يرجى اختيار رحلة",
		domain.CodeSelectClass:         "يرجى اختيار الدرجة",
		domain.CodeSelectTerminal:      "يرجى اختيار صالة",
		domain.CodeEnterSeatNumber:     "يرجى إدخال رقم المقعد",
		domain.CodeInvalidSeatCount:    "يرجى إدخال عدد مقاعد صحيح",
		domain.CodeAllFieldsRequired:   "جميع الحقول مطلوبة!",
		domain.CodeInvalidFlightNumber: "يرجى إدخال رقم رحلة صحيح (أرقام فقط)",
		domain.CodeFlightExists:        "الرحلة %s موجودة بالفعل بتاريخ %s!",
		domain.CodeDateFormat:          "يرجى استخدام الصيغة YYYY-MM-DD للتواريخ!",
		domain.CodeInvalidOrigin:       "يرجى اختيار مطار مغادرة صحيح!",
		domain.CodeInvalidDestination:  "يرجى اختيار مطار وصول صحيح!",
		domain.CodeSameAirports:        "لا يمكن أن يكون مطار المغادرة هو نفسه مطار الوصول!",
		domain.CodeArrivalBeforeDepart: "يجب أن يكون الوصول بعد المغادرة!",
		domain.CodeInvalidDateTime:     "تاريخ/وقت غير صالح: %s",
		domain.CodeInvalidGenderOrNat:  "الجنس أو الجنسية غير صالحة",
		domain.CodePassportExists:      "رقم الجواز موجود بالفعل",
		domain.CodeMissingCredentials:  "يرجى إدخال اسم المستخدم وكلمة المرور",
		domain.CodeInvalidSelection:    "%s غير معروف: %s",
		domain.CodeInvalidRequest:      "طلب غير صالح",
	},
}

func init() {
	for tag, messages := range translations {
		for key, msg := range messages {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}
