package dosimetry

import "radiation-engine/internal/model"

// YourMissionLabel marks the dynamic entry in the historical comparison.
const YourMissionLabel = "Your Mission"

var historicalMissions = []model.HistoricalRecord{
	{Label: "ISS (6 months)", DoseMSv: 80},
	{Label: "Apollo 14 (9 days)", DoseMSv: 1.14},
	{Label: "Mars Curiosity (8 years)", DoseMSv: 1200},
}

// HistoricalComparison returns the fixed past-mission records followed
// by a "Your Mission" entry holding the computed total dose.
func HistoricalComparison(totalDoseMSv float64) []model.HistoricalRecord {
	records := make([]model.HistoricalRecord, 0, len(historicalMissions)+1)
	records = append(records, historicalMissions...)
	records = append(records, model.HistoricalRecord{Label: YourMissionLabel, DoseMSv: totalDoseMSv})
	return records
}
