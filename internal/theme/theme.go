// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package theme classifies free-text brand themes into a closed set of
// categories, each carrying curated topic and hashtag pools. The pools
// are static and read-only; nothing in this package mutates them.
package theme

import "strings"

// Category is one of the recognized theme classes. The zero value
// Unclassified means no category matched.
type Category string

const (
	Unclassified Category = ""
	Fitness      Category = "Fitness"
	Mental       Category = "Mental"
	Business     Category = "Business"
	Technology   Category = "Technology"
)

// Categories lists the known categories in classification order.
// Classify checks them in this order and returns the first match.
var Categories = []Category{Fitness, Mental, Business, Technology}

// Classify matches each known category name, case-insensitively, as a
// substring of themeText and returns the first category that matches.
// The boolean is false when no category matches. Deterministic and
// side-effect free.
func Classify(themeText string) (Category, bool) {
	lower := strings.ToLower(themeText)
	for _, c := range Categories {
		if strings.Contains(lower, strings.ToLower(string(c))) {
			return c, true
		}
	}
	return Unclassified, false
}

// Topics returns the category's curated topic list in its declared
// order, or nil for Unclassified. Callers must not modify the slice.
func (c Category) Topics() []string {
	return topicPools[c]
}

// HashtagPool returns the category's hashtag tokens (without the "#"
// prefix), or nil for Unclassified. Callers must not modify the slice.
func (c Category) HashtagPool() []string {
	return hashtagPools[c]
}

// topicPools holds 30 curated topics per category.
var topicPools = map[Category][]string{
	Fitness: {
		"Morning Workout Routines", "Healthy Breakfast Ideas", "Office Stretches",
		"Quick Lunch Workouts", "Evening Relaxation Techniques", "Weekend Fitness Challenges",
		"Desk Yoga Poses", "Healthy Snack Ideas", "Posture Correction Exercises",
		"Lunch Break Walks", "Stair Workout Ideas", "Healthy Meal Prep Tips",
		"Standing Desk Exercises", "Mindfulness Practices", "Hydration Tips",
		"Quick Stretches for Back Pain", "Healthy Takeout Options", "Sleep Improvement Tips",
		"Stress Relief Exercises", "Healthy Dessert Recipes", "Commute Workout Ideas",
		"Healthy Grocery List", "Quick Workout for Busy Days", "Healthy Meal Swaps",
		"Deskercise Routines", "Healthy Office Snacks", "Lunch Break Meditation",
		"Healthy Drink Recipes", "Weekend Fitness Goals", "Recovery Techniques",
	},
	Mental: {
		"Daily Mindfulness Practices", "Stress Management Techniques", "Anxiety Coping Strategies",
		"Self-Care Sunday Ideas", "Meditation for Beginners", "Journaling Prompts",
		"Breathing Exercises", "Digital Detox Tips", "Positive Affirmations",
		"Sleep Hygiene Habits", "Gratitude Practice", "Boundary Setting",
		"Emotional Regulation", "Mindful Eating", "Nature Therapy Benefits",
		"Social Connection Tips", "Creative Expression", "Time Management",
		"Perfectionism Recovery", "Self-Compassion Exercises", "Mindful Communication",
		"Workplace Wellness", "Seasonal Affective Disorder", "Therapy Benefits",
		"Mental Health Myths", "Crisis Resources", "Support System Building",
		"Mindful Movement", "Cognitive Behavioral Techniques", "Mental Health First Aid",
	},
	Business: {
		"Morning Productivity Routines", "Time Management Hacks", "Networking Strategies",
		"Leadership Development", "Team Building Activities", "Goal Setting Frameworks",
		"Communication Skills", "Presentation Tips", "Email Etiquette",
		"Remote Work Best Practices", "Meeting Efficiency", "Delegation Techniques",
		"Conflict Resolution", "Innovation Strategies", "Customer Service Excellence",
		"Brand Building Tips", "Social Media Marketing", "Content Creation Ideas",
		"Financial Planning", "Investment Basics", "Entrepreneurship Mindset",
		"Work-Life Balance", "Professional Development", "Industry Trends",
		"Negotiation Skills", "Project Management", "Digital Marketing",
		"Sales Techniques", "Client Relationship Management", "Strategic Planning",
	},
	Technology: {
		"AI Tools for Productivity", "Cybersecurity Best Practices", "Cloud Computing Benefits",
		"Mobile App Development", "Web Design Trends", "Data Privacy Tips",
		"Social Media Security", "Digital Minimalism", "Tech for Seniors",
		"Automation Tools", "Programming Languages", "Tech Career Paths",
		"Gadget Reviews", "Software Recommendations", "Tech News Updates",
		"Digital Wellness", "Online Learning Platforms", "Tech Troubleshooting",
		"Future Tech Predictions", "Startup Tech Stack", "Open Source Tools",
		"Tech Accessibility", "Green Technology", "Blockchain Basics",
		"IoT Applications", "Virtual Reality Uses", "Machine Learning Intro",
		"Tech Ethics", "Digital Transformation", "Tech Community Building",
	},
}

// hashtagPools holds 6 hashtag tokens per category.
var hashtagPools = map[Category][]string{
	Fitness:    {"FitnessMotivation", "HealthyLifestyle", "WorkoutTips", "FitLife", "HealthyHabits", "WellnessJourney"},
	Mental:     {"MentalHealthMatters", "SelfCare", "Mindfulness", "WellnessWednesday", "MentalWellness", "SelfLove"},
	Business:   {"BusinessTips", "Entrepreneurship", "Leadership", "ProductivityHacks", "BusinessGrowth", "Success"},
	Technology: {"TechTips", "Innovation", "DigitalLife", "TechTrends", "FutureTech", "TechCommunity"},
}

// GenericTopics is the fallback topic base for unclassified themes.
// The sequencer formats entry i as "{theme}: {GenericTopics[i%30]}".
var GenericTopics = []string{
	"Getting Started Guide", "Common Mistakes to Avoid", "Expert Tips",
	"Best Practices", "Tools and Resources", "Success Stories",
	"Troubleshooting Guide", "Advanced Techniques", "Industry Insights",
	"Trends and Updates", "Community Spotlight", "Q&A Session",
	"Behind the Scenes", "Case Study", "Tutorial Tuesday",
	"Myth Busting", "Quick Tips", "Deep Dive Analysis",
	"Beginner's Guide", "Pro Tips", "Weekly Roundup",
	"How-To Guide", "Comparison Review", "Future Predictions",
	"Personal Experience", "Lessons Learned", "Resource Recommendations",
	"Community Discussion", "Expert Interview", "Reflection Friday",
}

// GenericHashtags are tokens that work for any theme.
var GenericHashtags = []string{
	"Motivation", "Tips", "Growth", "Success",
	"Community", "Inspiration", "Goals", "Progress",
}
