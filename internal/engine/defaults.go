package engine

// DefaultDaily is the schema new users start with, and the template that
// persisted daily records are reconciled against.
func DefaultDaily() []Task {
	return []Task{
		{ID: 1, Name: "Workout", Alternatives: []string{"Gym", "Yoga"}, Completed: Ledger{}, Streak: new(int)},
		{ID: 2, Name: "Read", Alternatives: []string{"Book", "Kindle"}, Completed: Ledger{}, Streak: new(int)},
	}
}

func DefaultWeekly() []Task {
	return []Task{
		{ID: 101, Name: "Go out", Alternatives: []string{"Dinner", "Movie"}, Completed: Ledger{}},
	}
}
