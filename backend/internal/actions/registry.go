package actions

// registry returns every action definition, grouped by tool category
func registry() []action {
	var all []action
	for _, group := range [][]action{
		writingActions(),
		creativityActions(),
		socialActions(),
		textActions(),
		learningActions(),
		chatActions(),
		businessActions(),
		designActions(),
		developerActions(),
		funActions(),
		universalActions(),
	} {
		all = append(all, group...)
	}
	return all
}
