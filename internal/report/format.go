package report

import (
	"time"

	"cloud.google.com/go/civil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dateLayout = "Mon Jan 02 2006"

var amountPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatAmount renders amount as US dollars: "$1,234.50", "-$5.00".
func FormatAmount(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "$" + amountPrinter.Sprintf("%.2f", amount)
}

// FormatDate renders d as e.g. "Wed Oct 27 2021".
func FormatDate(d civil.Date) string {
	return d.In(time.UTC).Format(dateLayout)
}
