// Package insight derives trend eligibility, daily averages and a canned
// insight message from a user's mood history. Every function is pure over
// the entries it is given; fetching is the caller's job.
package insight

import (
	"math/rand"
	"sort"

	"moodlog/models"
)

// MinDistinctDays is the smallest number of distinct calendar days that
// justifies drawing a trend chart. Two entries on the same day don't count.
const MinDistinctDays = 2

// MinEntriesForInsight gates the bucketed recommendation; below it the
// fixed KeepLoggingMessage is returned instead of a random pick.
const MinEntriesForInsight = 3

const KeepLoggingMessage = "Keep logging your mood for a few more days to unlock personalized insights!"

// Bucket thresholds are inclusive on the lower bound: a mean of exactly 7
// is positive, exactly 4 is neutral.
const (
	positiveThreshold = 7
	neutralThreshold  = 4
)

var PositiveInsights = []string{
	"Your recent mood has been consistently positive. Keep up the great work!",
	"Seeing lots of positive moods from you lately. Whatever you're doing, it's working!",
	"It looks like you've been having a great week. Keep embracing that positive energy.",
	"Your mood log is shining brightly! Thanks for sharing your positive moments.",
	"A consistent high mood is a great sign of well-being. Keep riding that wave!",
	"Fantastic! Your recent entries show a very positive trend. Keep it up.",
	"It's wonderful to see such positive check-ins. You're doing great.",
	"Your mood trend is pointing straight up! We love to see it.",
	"You've been in a great headspace recently. Remember what this feels like.",
	"The data shows a happy and healthy mindset. Keep building on this momentum.",
	"Keep doing what you're doing! The positivity is clear from your entries.",
	"Your consistent positive mood is an achievement worth celebrating.",
	"It's great to see you thriving. Your mood log reflects a period of well-being.",
	"Your mood entries are overwhelmingly positive. That's a wonderful sign.",
	"The trend is clear: you've been feeling great. Keep that positive momentum going!",
}

var NeutralInsights = []string{
	"Your mood has been fluctuating. Remember to take time for self-care activities.",
	"Some good days, some not-so-good days. That's a normal part of life's rhythm.",
	"It seems like a mix of ups and downs recently. A consistent routine can sometimes help stabilize mood.",
	"Your mood seems balanced but with some variations. Check in with yourself and see what you need today.",
	"A mixed bag of moods is common. What's one small thing you can do for yourself today?",
	"Your log shows a blend of different feelings. Remember that all your emotions are valid.",
	"Navigating both highs and lows is part of the journey. Be patient with yourself.",
	"It looks like an average week. Consider scheduling a small activity you enjoy to give yourself a boost.",
	"Your mood is steady but has room for a lift. How about some fresh air or your favorite music?",
	"A neutral trend can be a good time for reflection. What's one thing that could make tomorrow brighter?",
	"The data shows a mix of moods. It's okay to have days where you just feel 'okay'.",
	"Your mood has been steady. Acknowledging these neutral moments is as important as the highs and lows.",
	"This period of balance could be a good time to build some new, healthy habits.",
	"Your log shows a stable, neutral trend. This can be a sign of resilience.",
	"It's okay to just be. Your mood entries show a period of calm and balance.",
}

var NegativeInsights = []string{
	"It seems you've had a tough few days. Consider talking to a friend or engaging in a relaxing hobby.",
	"Your mood has been trending lower recently. Remember that it's okay not to be okay. Prioritize rest.",
	"Seeing a pattern of lower moods. A short walk outside can sometimes make a surprising difference.",
	"It looks like things have been challenging lately. Please be extra kind to yourself.",
	"Remember that tough times don't last forever. Your favorite comfort movie or a warm drink might help.",
	"Your recent entries suggest you're going through a rough patch. Your feelings are valid; let yourself feel them.",
	"When your mood is low, small comforts can help. Consider listening to some calming music or a podcast.",
	"It's brave of you to keep logging even on difficult days. Acknowledging your feelings is a huge first step.",
	"It looks like you could use a break. Is there something simple you can do to de-stress, even for 5 minutes?",
	"Seeing this pattern is a sign to check in with yourself. Remember the support resources in the app if you need them.",
	"Be gentle with yourself. Storms don't last forever.",
	"It's okay to feel this way. Acknowledging difficult emotions is a sign of strength.",
	"This seems like a difficult period. Make sure you're getting enough rest and being kind to your body and mind.",
	"Remember that even a small step is still a step forward. Don't pressure yourself too much right now.",
	"Your log shows you're navigating some tough feelings. Reaching out to someone you trust can often lighten the load.",
}

func entryDay(entry models.MoodEntry) string {
	return entry.Date.UTC().Format("2006-01-02")
}

func DistinctDays(entries []models.MoodEntry) int {
	days := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		days[entryDay(entry)] = struct{}{}
	}
	return len(days)
}

func HasEnoughTrendData(entries []models.MoodEntry) bool {
	return DistinctDays(entries) >= MinDistinctDays
}

// Recommendation classifies the mean score into one of three buckets and
// picks a message from it at random. Random on purpose: variety is part
// of the feature, so tests should assert bucket membership only.
func Recommendation(entries []models.MoodEntry) string {
	if len(entries) < MinEntriesForInsight {
		return KeepLoggingMessage
	}
	var sum int
	for _, entry := range entries {
		sum += entry.MoodScore
	}
	mean := float64(sum) / float64(len(entries))

	switch {
	case mean >= positiveThreshold:
		return PositiveInsights[rand.Intn(len(PositiveInsights))]
	case mean >= neutralThreshold:
		return NeutralInsights[rand.Intn(len(NeutralInsights))]
	default:
		return NegativeInsights[rand.Intn(len(NegativeInsights))]
	}
}

type DailyAverage struct {
	Date      string  `json:"date"`
	MoodScore float64 `json:"mood_score"`
}

// DailyAverages groups entries by calendar day and averages the scores,
// ordered by date ascending. This is the trend chart's only input.
func DailyAverages(entries []models.MoodEntry) []DailyAverage {
	type acc struct {
		sum   int
		count int
	}
	byDay := make(map[string]*acc)
	for _, entry := range entries {
		day := entryDay(entry)
		a, ok := byDay[day]
		if !ok {
			a = &acc{}
			byDay[day] = a
		}
		a.sum += entry.MoodScore
		a.count++
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	series := make([]DailyAverage, 0, len(days))
	for _, day := range days {
		a := byDay[day]
		series = append(series, DailyAverage{
			Date:      day,
			MoodScore: float64(a.sum) / float64(a.count),
		})
	}
	return series
}
