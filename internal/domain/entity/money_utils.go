package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/fundr-ph/donation-ledger/internal/domain/error"
)

// MaxDecimalPlaces is the maximum number of decimal places accepted for amounts.
const MaxDecimalPlaces = 2

// ParseAmount validates a decimal amount string and converts it to centavos.
// The parsing is string-based to avoid floating point precision issues:
// "500" -> 50000, "25.5" -> 2550, "10.15" -> 1015. Negative amounts and
// more than two decimal places are rejected.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string
	if len(parts) == 1 {
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			integerValue = parts[0] + "00"
		case 1:
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// ParsePositiveAmount is ParseAmount with the additional ledger constraint
// that a donation amount must be strictly greater than zero.
func ParsePositiveAmount(amount string) (int64, error) {
	centavos, err := ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if centavos == 0 {
		return 0, fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}
	return centavos, nil
}

// FormatCentavos converts an integer centavo amount to a decimal string.
// 1015 becomes "10.15", 1000 becomes "10.00", 5 becomes "0.05".
func FormatCentavos(centavos int64) string {
	isNegative := centavos < 0
	if isNegative {
		centavos = -centavos
	}

	amountStr := strconv.FormatInt(centavos, 10)
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}
