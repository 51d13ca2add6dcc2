package coachtext

// translations maps language codes to translation keys and their values.
var translations = map[Language]map[string]string{
	French: {
		"suggestion.hypertrophy_top_of_range": "12 reps atteintes ! Passe à {weight} × {reps}.",
		"suggestion.hypertrophy_reps_up":      "+{diff} reps, continue ! Vise {reps} reps à {weight}.",
		"suggestion.hypertrophy_weight_up":    "Charge augmentée, consolide à {weight} et vise {reps} reps.",
		"suggestion.endurance_reps_up":        "Belle endurance ! Vise {reps} reps à {weight}.",
		"suggestion.strength_top_of_range":    "Force en hausse : monte à {weight} × {reps}.",
		"suggestion.strength_build_reps":      "Reste à {weight} et vise {reps} reps.",
		"suggestion.data_entry_error":         "Écart inhabituel avec la dernière séance, vérifie ta saisie.",
		"suggestion.reps_jump":                "+{diff} reps ! Monte à {weight} × {reps}.",
		"suggestion.weight_up_hold":           "Nouvelle charge tenue, garde {weight} × {reps}.",
		"suggestion.deload":                   "Baisse de forme : semaine légère à {weight} (-20 %).",
		"suggestion.stagnation":               "Même performance, garde {weight} × {reps} et pousse une rep de plus.",
		"suggestion.keep_going":               "Continue à {weight} × {reps}.",
		"suggestion.first_hypertrophy_top":    "12 reps atteintes ! Passe à {weight} × {reps}.",
		"suggestion.first_hypertrophy_build":  "Vise {reps} reps à {weight}.",
		"suggestion.first_endurance":          "Vise {reps} reps à {weight}.",
		"suggestion.first_strength_top":       "Monte à {weight} × {reps}.",
		"suggestion.first_strength_build":     "Reste à {weight} et vise {reps} reps.",
		"suggestion.bodyweight_improved":      "+{diff} reps depuis la dernière fois ! Objectif {reps} reps.",
		"suggestion.bodyweight_keep":          "Objectif {reps} reps.",
		"suggestion.bodyweight_first":         "Objectif {reps} reps.",
		"suggestion.unusual_values":           "Valeurs inhabituelles ({weight} × {reps}), vérifie ta saisie.",
		"record.reps":                         "Nouveau record : +{diff} reps !",
		"record.weight":                       "Nouveau record : +{diff} !",
		"record.volume":                       "Nouveau record de volume : +{diff} !",
		"challenge.unusual_values":            "Valeurs inhabituelles, vérifie ta saisie.",
		"challenge.normal_fatigue":            "-{drop} reps : fatigue normale.",
		"challenge.rest_longer":               "-{drop} reps : repose-toi un peu plus longtemps.",
		"challenge.reps_challenge":            "Défi : {reps} reps !",
		"challenge.weight_increase":           "Prêt pour {weight} ?",
		"difference.badge":                    "{weight} · {reps} vs la dernière fois",
		"difference.same":                     "Comme la dernière fois",
		"unit.reps":                           "reps",
		"summary.duration":                    "Durée",
		"summary.calories":                    "Calories",
		"summary.volume":                      "Volume",
		"summary.exercises":                   "Exercices",
		"summary.split":                       "Cardio / Muscu",
		"summary.delta":                       "vs séance précédente",
	},
	English: {
		"suggestion.hypertrophy_top_of_range": "12 reps reached! Move up to {weight} × {reps}.",
		"suggestion.hypertrophy_reps_up":      "+{diff} reps, keep going! Aim for {reps} reps at {weight}.",
		"suggestion.hypertrophy_weight_up":    "Weight went up, consolidate at {weight} and aim for {reps} reps.",
		"suggestion.endurance_reps_up":        "Great endurance! Aim for {reps} reps at {weight}.",
		"suggestion.strength_top_of_range":    "Strength is up: go to {weight} × {reps}.",
		"suggestion.strength_build_reps":      "Stay at {weight} and aim for {reps} reps.",
		"suggestion.data_entry_error":         "Unusual gap from last session, check what you logged.",
		"suggestion.reps_jump":                "+{diff} reps! Move up to {weight} × {reps}.",
		"suggestion.weight_up_hold":           "New weight held, keep {weight} × {reps}.",
		"suggestion.deload":                   "Performance dipped: take a light week at {weight} (-20%).",
		"suggestion.stagnation":               "Same as last time, keep {weight} × {reps} and push one more rep.",
		"suggestion.keep_going":               "Keep going at {weight} × {reps}.",
		"suggestion.first_hypertrophy_top":    "12 reps reached! Move up to {weight} × {reps}.",
		"suggestion.first_hypertrophy_build":  "Aim for {reps} reps at {weight}.",
		"suggestion.first_endurance":          "Aim for {reps} reps at {weight}.",
		"suggestion.first_strength_top":       "Go to {weight} × {reps}.",
		"suggestion.first_strength_build":     "Stay at {weight} and aim for {reps} reps.",
		"suggestion.bodyweight_improved":      "+{diff} reps since last time! Target {reps} reps.",
		"suggestion.bodyweight_keep":          "Target {reps} reps.",
		"suggestion.bodyweight_first":         "Target {reps} reps.",
		"suggestion.unusual_values":           "Unusual values ({weight} × {reps}), check what you logged.",
		"record.reps":                         "New record: +{diff} reps!",
		"record.weight":                       "New record: +{diff}!",
		"record.volume":                       "New volume record: +{diff}!",
		"challenge.unusual_values":            "Unusual values, check what you logged.",
		"challenge.normal_fatigue":            "-{drop} reps: normal fatigue.",
		"challenge.rest_longer":               "-{drop} reps: rest a little longer.",
		"challenge.reps_challenge":            "Challenge: {reps} reps!",
		"challenge.weight_increase":           "Ready for {weight}?",
		"difference.badge":                    "{weight} · {reps} vs last time",
		"difference.same":                     "Same as last time",
		"unit.reps":                           "reps",
		"summary.duration":                    "Duration",
		"summary.calories":                    "Calories",
		"summary.volume":                      "Volume",
		"summary.exercises":                   "Exercises",
		"summary.split":                       "Cardio / Strength",
		"summary.delta":                       "vs previous session",
	},
}
