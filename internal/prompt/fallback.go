package prompt

import "github.com/quilljot/quill/internal/models"

// Fallback returns the embedded prompt pool used whenever the remote pool is
// unavailable or malformed. It is deliberately small but covers both modes
// and enough mood/time categories that mixing still has something to do.
func Fallback() models.PromptPool {
	return models.PromptPool{
		Life: []string{
			"What made you pause today?",
			"Describe a small moment you want to remember.",
			"What are you avoiding thinking about right now?",
			"Write about something you noticed on your way somewhere.",
			"What would you tell yourself from one year ago?",
			"What is taking up most of your headspace today?",
			"Describe the last thing that made you laugh.",
			"What does rest look like for you this week?",
			"Write about a conversation that stuck with you.",
			"What is one thing you changed your mind about recently?",
			"What are you looking forward to, even a little?",
			"Describe today in three honest sentences, then keep going.",
			"What would make tomorrow one percent better?",
			"Write about something you own that has a story.",
		},
		Career: []string{
			"What did you actually accomplish today, however small?",
			"What problem at work keeps resurfacing?",
			"Describe a decision you made today and why.",
			"What did you learn this week that you didn't expect to?",
			"Write about a colleague who made your day easier.",
			"What would you delegate tomorrow if you could?",
			"What part of your work felt effortless today?",
			"What feedback have you been sitting on?",
			"Describe what a great workday looks like for you.",
			"What skill do you want more reps with?",
			"What meeting could have been a message, and why?",
			"Write about something you shipped, finished, or closed out.",
			"What are you tolerating at work that you shouldn't?",
			"Where did your time actually go today?",
		},
		TimeAware: map[string][]string{
			"morning": {
				"What would make today feel complete?",
				"What is the first thing on your mind this morning?",
				"Set one intention for the day and explain it.",
			},
			"evening": {
				"What is one thing today taught you?",
				"What are you carrying into tomorrow that you could put down?",
				"Replay the best five minutes of your day.",
			},
			"monday": {
				"What would make this week a good one?",
			},
			"friday": {
				"What deserves a small celebration this week?",
			},
			"weekend": {
				"What does a good weekend actually look like for you?",
			},
		},
		Moods: map[string][]string{
			"reflective": {
				"What pattern in your life became visible recently?",
				"What old belief no longer fits?",
				"What are you slowly getting better at?",
			},
			"grateful": {
				"Name three ordinary things you'd miss if they were gone.",
				"Who made your life easier lately, and how?",
				"What went right today that usually goes wrong?",
			},
			"energized": {
				"What would you start right now if nothing could stop you?",
				"What is the boldest version of your current plan?",
				"What momentum do you want to keep?",
			},
			"creative": {
				"Describe your day as if it were a scene in a novel.",
				"Invent a better version of something that annoyed you today.",
				"Write the opening line of a story only you could tell.",
			},
			"struggling": {
				"What is hard right now, in plain words?",
				"What is the smallest next step you could take?",
			},
		},
	}
}
