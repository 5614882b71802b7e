package store

// ResetAll performs the total local-data reset: every store returns to
// its default state and drops its snapshot.
func ResetAll(nav *NavigationStore, user *UserStore, settings *SettingsStore) {
	nav.Reset()
	user.Reset()
	settings.Reset()
}
