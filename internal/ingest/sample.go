package ingest

import (
	"math/rand"
	"time"

	"inboxzero-be/internal/models"
)

var sampleSenders = []string{
	"team@asana.com",
	"alerts@github.com",
	"promo@store.com",
	"calendar@google.com",
	"newsletter@producthunt.com",
	"finance@bank.com",
	"ops@company.io",
}

var sampleSubjects = []string{
	"Meeting moved to 2PM",
	"Invoice #3102",
	"50% off promo",
	"Deployment alert",
	"Your weekly newsletter",
	"Payment receipt",
	"Schedule update",
}

// SampleData builds a demo record set: 240 emails spread over the trailing
// three weeks from a fixed sender/subject pool.
func SampleData() []models.EmailRecord {
	now := time.Now()
	rows := make([]models.EmailRecord, 0, 240)

	for i := 0; i < 240; i++ {
		day := now.AddDate(0, 0, -rand.Intn(21))
		d := time.Date(day.Year(), day.Month(), day.Day(), rand.Intn(24), rand.Intn(60), 0, 0, time.Local)

		from := sampleSenders[rand.Intn(len(sampleSenders))]
		subject := sampleSubjects[rand.Intn(len(sampleSubjects))]
		rows = append(rows, NewRecord(d, from, subject))
	}
	return rows
}
