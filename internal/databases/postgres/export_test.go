package postgres

// Get looks a record up by label.
func (collection BackupCollection) Get(label string) (result BackupRecord, found bool) {
	collection.Walk(func(record BackupRecord) bool {
		if record.Label == label {
			result, found = record, true
		}
		return !found
	})
	return result, found
}
