package models

import "encoding/json"

// Opt - поле частичного обновления: Set означает, что ключ присутствовал в запросе.
// null в JSON тоже считается присутствием и перезаписывает значение нулевым.
type Opt[T any] struct {
	Set   bool
	Value T
}

// Some возвращает заданное поле
func Some[T any](v T) Opt[T] {
	return Opt[T]{Set: true, Value: v}
}

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// RecordPatch - частичное обновление записи. id не входит в патч и не меняется.
type RecordPatch struct {
	Title       Opt[string]    `json:"title"`
	Type        Opt[string]    `json:"type"`
	OccurredAt  Opt[Timestamp] `json:"date"`
	Status      Opt[string]    `json:"status"`
	Location    Opt[string]    `json:"location"`
	Latitude    Opt[*float64]  `json:"latitude"`
	Longitude   Opt[*float64]  `json:"longitude"`
	Description Opt[string]    `json:"description"`
	VictimName  Opt[string]    `json:"victimName"`
	SuspectName Opt[string]    `json:"suspectName"`
	OfficerName Opt[string]    `json:"officerName"`
	CaseNumber  Opt[string]    `json:"caseNumber"`
}

// UnmarshalJSON принимает также ключ occurredAt, если date не передан
func (p *RecordPatch) UnmarshalJSON(data []byte) error {
	type plain RecordPatch
	aux := struct {
		*plain
		OccurredAtAlias Opt[Timestamp] `json:"occurredAt"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if !p.OccurredAt.Set && aux.OccurredAtAlias.Set {
		p.OccurredAt = aux.OccurredAtAlias
	}
	return nil
}

// Apply накладывает заданные поля патча на запись
func (p RecordPatch) Apply(r Record) Record {
	out := r.Clone()
	applyOpt(&out.Title, p.Title)
	applyOpt(&out.Type, p.Type)
	applyOpt(&out.OccurredAt, p.OccurredAt)
	applyOpt(&out.Status, p.Status)
	applyOpt(&out.Location, p.Location)
	applyOpt(&out.Description, p.Description)
	applyOpt(&out.VictimName, p.VictimName)
	applyOpt(&out.SuspectName, p.SuspectName)
	applyOpt(&out.OfficerName, p.OfficerName)
	applyOpt(&out.CaseNumber, p.CaseNumber)
	if p.Latitude.Set {
		out.Latitude = copyFloat(p.Latitude.Value)
	}
	if p.Longitude.Set {
		out.Longitude = copyFloat(p.Longitude.Value)
	}
	return out
}

// Empty сообщает, что в патче нет ни одного поля
func (p RecordPatch) Empty() bool {
	return !p.Title.Set && !p.Type.Set && !p.OccurredAt.Set && !p.Status.Set &&
		!p.Location.Set && !p.Latitude.Set && !p.Longitude.Set && !p.Description.Set &&
		!p.VictimName.Set && !p.SuspectName.Set && !p.OfficerName.Set && !p.CaseNumber.Set
}

func applyOpt[T any](dst *T, o Opt[T]) {
	if o.Set {
		*dst = o.Value
	}
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
