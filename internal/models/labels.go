package models

// CrimeType - известный тип происшествия. Хранилище принимает любые строки,
// строгий разбор нужен только для оформления графиков.
type CrimeType string

const (
	CrimeTheft     CrimeType = "Theft"
	CrimeAssault   CrimeType = "Assault"
	CrimeBurglary  CrimeType = "Burglary"
	CrimeVandalism CrimeType = "Vandalism"
	CrimeFraud     CrimeType = "Fraud"
	CrimeOther     CrimeType = "Other"
)

// CaseStatus - известный статус дела
type CaseStatus string

const (
	StatusOpen               CaseStatus = "Open"
	StatusUnderInvestigation CaseStatus = "Under Investigation"
	StatusSolved             CaseStatus = "Solved"
	StatusClosed             CaseStatus = "Closed"
)

var knownCrimeTypes = map[CrimeType]struct{}{
	CrimeTheft: {}, CrimeAssault: {}, CrimeBurglary: {}, CrimeVandalism: {}, CrimeFraud: {}, CrimeOther: {},
}

var knownStatuses = map[CaseStatus]struct{}{
	StatusOpen: {}, StatusUnderInvestigation: {}, StatusSolved: {}, StatusClosed: {},
}

// ParseCrimeType возвращает тип и false, если метка не из известного набора
func ParseCrimeType(s string) (CrimeType, bool) {
	t := CrimeType(s)
	_, ok := knownCrimeTypes[t]
	return t, ok
}

// ParseCaseStatus возвращает статус и false, если метка не из известного набора
func ParseCaseStatus(s string) (CaseStatus, bool) {
	st := CaseStatus(s)
	_, ok := knownStatuses[st]
	return st, ok
}
