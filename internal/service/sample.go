package service

import "github.com/shenikar/crime_file_system/internal/models"

func ptr(v float64) *float64 {
	return &v
}

// SampleRecords - демонстрационные записи для пустого хранилища
func SampleRecords() []models.Record {
	return []models.Record{
		{
			ID:          models.NumericID(1),
			Title:       "Armed Robbery at Central Bank",
			Type:        "Theft",
			OccurredAt:  models.ParseTimestamp("2024-01-15T14:30:00"),
			Status:      "Under Investigation",
			Location:    "123 Main Street, Downtown",
			Latitude:    ptr(40.7128),
			Longitude:   ptr(-74.0060),
			Description: "Armed suspect entered the bank and demanded money from tellers. Suspect fled with approximately $50,000.",
			VictimName:  "Central Bank",
			SuspectName: "Unknown",
			OfficerName: "Detective Johnson",
			CaseNumber:  "CR-2024-001",
		},
		{
			ID:          models.NumericID(2),
			Title:       "Assault at Park Avenue",
			Type:        "Assault",
			OccurredAt:  models.ParseTimestamp("2024-01-20T22:15:00"),
			Status:      "Solved",
			Location:    "456 Park Avenue, Midtown",
			Latitude:    ptr(40.7589),
			Longitude:   ptr(-73.9851),
			Description: "Physical altercation between two individuals resulted in minor injuries. Suspect apprehended.",
			VictimName:  "John Smith",
			SuspectName: "Mike Johnson",
			OfficerName: "Officer Davis",
			CaseNumber:  "CR-2024-002",
		},
		{
			ID:          models.NumericID(3),
			Title:       "Burglary at Residential Complex",
			Type:        "Burglary",
			OccurredAt:  models.ParseTimestamp("2024-01-25T03:45:00"),
			Status:      "Open",
			Location:    "789 Oak Street, Uptown",
			Latitude:    ptr(40.7505),
			Longitude:   ptr(-73.9934),
			Description: "Multiple apartments broken into during early morning hours. Electronics and jewelry stolen.",
			VictimName:  "Multiple Residents",
			SuspectName: "Unknown",
			OfficerName: "Detective Wilson",
			CaseNumber:  "CR-2024-003",
		},
		{
			ID:          models.NumericID(4),
			Title:       "Vandalism at Public Library",
			Type:        "Vandalism",
			OccurredAt:  models.ParseTimestamp("2024-02-01T19:20:00"),
			Status:      "Closed",
			Location:    "321 Library Lane, Downtown",
			Latitude:    ptr(40.7142),
			Longitude:   ptr(-74.0064),
			Description: "Graffiti found on library walls and books damaged. Security cameras captured suspect.",
			VictimName:  "Public Library",
			SuspectName: "Teenage Group",
			OfficerName: "Officer Brown",
			CaseNumber:  "CR-2024-004",
		},
		{
			ID:          models.NumericID(5),
			Title:       "Credit Card Fraud",
			Type:        "Fraud",
			OccurredAt:  models.ParseTimestamp("2024-02-05T11:30:00"),
			Status:      "Under Investigation",
			Location:    "Online Transaction",
			Latitude:    ptr(40.7128),
			Longitude:   ptr(-74.0060),
			Description: "Multiple unauthorized transactions detected on victim's credit card. Suspected data breach.",
			VictimName:  "Sarah Johnson",
			SuspectName: "Unknown",
			OfficerName: "Detective Martinez",
			CaseNumber:  "CR-2024-005",
		},
		{
			ID:          models.NumericID(6),
			Title:       "Vehicle Theft in Downtown",
			Type:        "Theft",
			OccurredAt:  models.ParseTimestamp("2024-02-10T08:15:00"),
			Status:      "Open",
			Location:    "555 Broadway, Downtown",
			Latitude:    ptr(40.7589),
			Longitude:   ptr(-73.9851),
			Description: "Luxury vehicle stolen from parking garage. Security footage shows suspect.",
			VictimName:  "Robert Chen",
			SuspectName: "Unknown",
			OfficerName: "Officer Garcia",
			CaseNumber:  "CR-2024-006",
		},
		{
			ID:          models.NumericID(7),
			Title:       "Assault at Midtown Station",
			Type:        "Assault",
			OccurredAt:  models.ParseTimestamp("2024-02-12T16:45:00"),
			Status:      "Solved",
			Location:    "Grand Central Terminal, Midtown",
			Latitude:    ptr(40.7527),
			Longitude:   ptr(-73.9772),
			Description: "Physical altercation between commuters. Suspect apprehended by transit police.",
			VictimName:  "Lisa Thompson",
			SuspectName: "David Wilson",
			OfficerName: "Transit Officer Lee",
			CaseNumber:  "CR-2024-007",
		},
		{
			ID:          models.NumericID(8),
			Title:       "Burglary at Uptown Residence",
			Type:        "Burglary",
			OccurredAt:  models.ParseTimestamp("2024-02-15T02:30:00"),
			Status:      "Under Investigation",
			Location:    "1234 Riverside Drive, Uptown",
			Latitude:    ptr(40.7829),
			Longitude:   ptr(-73.9654),
			Description: "Home invasion while residents were away. Electronics and jewelry stolen.",
			VictimName:  "Maria Rodriguez",
			SuspectName: "Unknown",
			OfficerName: "Detective Anderson",
			CaseNumber:  "CR-2024-008",
		},
	}
}
