package eventmodels

import (
	"fmt"
	"time"
)

const ExpirationDateLayout = "2006-01-02"

// MarketLocation is the fixed UTC-5 offset that OCC contract symbols encode expirations in.
var MarketLocation = time.FixedZone("EST", -5*60*60)

type ExpirationDate string

func (d ExpirationDate) Time() (time.Time, error) {
	t, err := time.Parse(ExpirationDateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("ExpirationDate: Time: failed to parse %q: %w", string(d), err)
	}

	return t, nil
}

// MarketTime returns local midnight of the expiration date in MarketLocation.
func (d ExpirationDate) MarketTime() (time.Time, error) {
	t, err := d.Time()
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, MarketLocation), nil
}

func (d ExpirationDate) IsValid() bool {
	_, err := d.Time()
	return err == nil
}

func NewExpirationDate(t time.Time) ExpirationDate {
	return ExpirationDate(t.Format(ExpirationDateLayout))
}
