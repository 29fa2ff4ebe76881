package core

import "encoding/json"

// expenseJSON is the wire shape shared by the persisted blob and the
// sync payload: {id, date, category, amount, memo} with the date as a
// YYYY-MM-DD string and the amount in whole yen.
type expenseJSON struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
	Memo     string `json:"memo"`
}

func (e Expense) MarshalJSON() ([]byte, error) {
	return json.Marshal(expenseJSON{
		ID:       e.ID,
		Date:     e.Date.String(),
		Category: e.Category,
		Amount:   e.Amount.Yen,
		Memo:     e.Memo,
	})
}

func (e *Expense) UnmarshalJSON(data []byte) error {
	var w expenseJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	d, err := ParseDate(w.Date)
	if err != nil {
		return err
	}
	*e = Expense{
		ID:       w.ID,
		Date:     d,
		Category: w.Category,
		Amount:   Money{Yen: w.Amount},
		Memo:     w.Memo,
	}
	return nil
}
