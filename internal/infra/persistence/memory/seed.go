// Package memory 提供 repository 接口的内存实现，并附带校园示例数据。
// STORAGE_DRIVER=memory 时使用（默认）。
package memory

import (
	"time"

	"github.com/padmeamd/uroom/internal/domain"
)

const (
	hour = time.Hour
	day  = 24 * time.Hour
)

// SeedRooms 返回相对 now 计算日程的示例房间。
func SeedRooms(now time.Time) []domain.Room {
	tomorrow := now.Add(day)
	in3Days := now.Add(3 * day)
	nextWeek := now.Add(5 * day)

	return []domain.Room{
		{
			ID:             "1",
			Title:          `Short Film: "The Last Lecture"`,
			Type:           domain.RoomTypeProject,
			BannerURL:      "https://images.unsplash.com/photo-1485846234645-a62644f84728?w=800&q=80",
			Description:    "Looking for passionate filmmakers to create a 10-min short film about a professor's final class. We have the script ready!",
			Location:       "UCLA Campus",
			DateTime:       in3Days,
			University:     "UCLA",
			CreatorID:      "u1",
			CreatorName:    "Alex Chen",
			CreatorAvatar:  "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&q=80",
			Tags:           []string{"Film", "Drama", "Storytelling", "Creative"},
			IsUrgent:       true,
			MaxMembers:     6,
			CurrentMembers: 2,
			RoleRequirements: []domain.RoleRequirement{
				{Role: "Director", Required: 1, Filled: 1},
				{Role: "Camera", Required: 1, Filled: 0},
				{Role: "Editor", Required: 1, Filled: 1},
				{Role: "Actor", Required: 2, Filled: 0},
				{Role: "Sound", Required: 1, Filled: 0},
			},
			QuizRequired:     true,
			InactivityPolicy: &domain.InactivityPolicy{Enabled: true, TimeoutHours: 24},
			Recommendation: &domain.Recommendation{
				Score:   95,
				Reasons: []string{"Film + Photography match", "Needs editor role", "Starting this week"},
			},
			CreatedAt: now,
		},
		{
			ID:             "2",
			Title:          "Board Game Night 🎲",
			Type:           domain.RoomTypeEvent,
			BannerURL:      "https://images.unsplash.com/photo-1632501641765-e568d28b0015?w=800&q=80",
			Description:    "Chill evening of Catan, Codenames, and snacks! All skill levels welcome. Bringing my collection!",
			Location:       "Student Union Room 204",
			DateTime:       tomorrow,
			University:     "UCLA",
			CreatorID:      "u2",
			CreatorName:    "Jamie Park",
			CreatorAvatar:  "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&q=80",
			Tags:           []string{"Games", "Social", "Chill", "Fun"},
			IsUrgent:       true,
			MaxMembers:     8,
			CurrentMembers: 4,
			AutoAccept:     true,
			Recommendation: &domain.Recommendation{
				Score:   88,
				Reasons: []string{"Social activity", "Tomorrow evening", "Open to all"},
			},
			CreatedAt: now,
		},
		{
			ID:             "3",
			Title:          "Startup MVP Sprint 🚀",
			Type:           domain.RoomTypeProject,
			BannerURL:      "https://images.unsplash.com/photo-1519389950473-47ba0277781c?w=800&q=80",
			Description:    "Building a campus food delivery app. Need devs and a designer for 2-week sprint. Equity possible!",
			Location:       "Remote + Weekly Meetups",
			DateTime:       nextWeek,
			University:     "UCLA",
			CreatorID:      "u3",
			CreatorName:    "Marcus Johnson",
			CreatorAvatar:  "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&q=80",
			Tags:           []string{"Startup", "Tech", "React", "Mobile"},
			MaxMembers:     5,
			CurrentMembers: 2,
			RoleRequirements: []domain.RoleRequirement{
				{Role: "Frontend Dev", Required: 2, Filled: 1},
				{Role: "Backend Dev", Required: 1, Filled: 1},
				{Role: "UI/UX Designer", Required: 1, Filled: 0},
				{Role: "PM", Required: 1, Filled: 0},
			},
			QuizRequired:     true,
			InactivityPolicy: &domain.InactivityPolicy{Enabled: true, TimeoutHours: 48},
			Recommendation: &domain.Recommendation{
				Score:   82,
				Reasons: []string{"Tech skills match", "Startup interest", "Remote friendly"},
			},
			CreatedAt: now,
		},
		{
			ID:             "4",
			Title:          "Photography Walk: Golden Hour",
			Type:           domain.RoomTypeEvent,
			BannerURL:      "https://images.unsplash.com/photo-1452587925148-ce544e77e70d?w=800&q=80",
			Description:    "Capture stunning golden hour shots around campus. Bring any camera - phone is fine! Will share tips.",
			Location:       "Sculpture Garden",
			DateTime:       in3Days,
			University:     "UCLA",
			CreatorID:      "u4",
			CreatorName:    "Sophie Williams",
			CreatorAvatar:  "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&q=80",
			Tags:           []string{"Photography", "Art", "Outdoors", "Creative"},
			MaxMembers:     12,
			CurrentMembers: 7,
			AutoAccept:     true,
			Recommendation: &domain.Recommendation{
				Score:   91,
				Reasons: []string{"Photography interest", "Creative activity", "Beginner friendly"},
			},
			CreatedAt: now,
		},
		{
			ID:             "5",
			Title:          "Hackathon Team: AI for Good",
			Type:           domain.RoomTypeProject,
			BannerURL:      "https://images.unsplash.com/photo-1504384308090-c894fdcc538d?w=800&q=80",
			Description:    "Forming a team for the upcoming AI hackathon. Let's build something that matters! 48hr sprint.",
			Location:       "Engineering Building",
			DateTime:       tomorrow,
			University:     "UCLA",
			CreatorID:      "u5",
			CreatorName:    "David Kim",
			CreatorAvatar:  "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=150&q=80",
			Tags:           []string{"AI", "Hackathon", "Machine Learning", "Social Impact"},
			IsUrgent:       true,
			MaxMembers:     4,
			CurrentMembers: 1,
			RoleRequirements: []domain.RoleRequirement{
				{Role: "ML Engineer", Required: 1, Filled: 1},
				{Role: "Full Stack Dev", Required: 2, Filled: 0},
				{Role: "Designer", Required: 1, Filled: 0},
			},
			QuizRequired:     true,
			InactivityPolicy: &domain.InactivityPolicy{Enabled: true, TimeoutHours: 24},
			Recommendation: &domain.Recommendation{
				Score:   78,
				Reasons: []string{"Tech + AI match", "Starting tomorrow", "Urgent team forming"},
			},
			CreatedAt: now,
		},
		{
			ID:             "6",
			Title:          "Coffee & Code ☕",
			Type:           domain.RoomTypeEvent,
			BannerURL:      "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=800&q=80",
			Description:    "Casual coding session at the campus café. Work on your projects, get help, or just hang out with fellow devs!",
			Location:       "Kerckhoff Coffee House",
			DateTime:       in3Days,
			University:     "UCLA",
			CreatorID:      "u6",
			CreatorName:    "Emma Rodriguez",
			CreatorAvatar:  "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=150&q=80",
			Tags:           []string{"Coding", "Social", "Networking", "Casual"},
			MaxMembers:     15,
			CurrentMembers: 6,
			AutoAccept:     true,
			Recommendation: &domain.Recommendation{
				Score:   85,
				Reasons: []string{"Coding interest", "Networking opportunity", "Relaxed atmosphere"},
			},
			CreatedAt: now,
		},
	}
}

// SeedQuizzes 示例项目房间的申请问卷。
func SeedQuizzes() []domain.Quiz {
	return []domain.Quiz{
		{
			RoomID: "1",
			Questions: []domain.QuizQuestion{
				{ID: "q1-1", Type: domain.QuestionSingleChoice, Question: "Which role are you applying for?",
					Options: []string{"Camera", "Actor", "Sound"}, Required: true},
				{ID: "q1-2", Type: domain.QuestionText, Question: "Link a short clip or project you worked on.", Required: false},
			},
		},
		{
			RoomID: "3",
			Questions: []domain.QuizQuestion{
				{ID: "q3-1", Type: domain.QuestionMultipleChoice, Question: "Which stacks are you comfortable with?",
					Options: []string{"React", "React Native", "Go", "Figma"}, Required: true},
				{ID: "q3-2", Type: domain.QuestionText, Question: "How many hours a week can you commit?", Required: true},
			},
		},
		{
			RoomID: "5",
			Questions: []domain.QuizQuestion{
				{ID: "q5-1", Type: domain.QuestionSingleChoice, Question: "Have you been to a hackathon before?",
					Options: []string{"Yes", "No"}, Required: true},
			},
		},
	}
}

// SeedUsers 示例用户资料。
func SeedUsers(now time.Time) []domain.User {
	return []domain.User{
		{
			ID:         "me",
			Name:       "Taylor Morgan",
			Email:      "taylor@ucla.edu",
			University: "UCLA",
			Age:        21,
			PhotoURL:   "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=400&q=80",
			Interests:  []string{"Film", "Photography", "Startups", "AI", "Music"},
			Skills:     []string{"Video Editing", "React", "Python", "UI Design", "Storytelling"},
			About:      "Film student passionate about visual storytelling. Looking to collaborate on creative projects and meet fellow creators! 🎬",
			CreatedAt:  now,
		},
		{
			ID:         "u1",
			Name:       "Alex Chen",
			University: "UCLA",
			PhotoURL:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&q=80",
			Interests:  []string{"Film", "Writing"},
			Skills:     []string{"Directing", "Screenwriting"},
			About:      "Directing my first short. Always up for coffee and storyboards.",
			CreatedAt:  now,
		},
		{
			ID:         "u2",
			Name:       "Jamie Park",
			University: "UCLA",
			PhotoURL:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400&q=80",
			Interests:  []string{"Board Games", "Music"},
			Skills:     []string{"Event Planning"},
			About:      "Owner of way too many board games.",
			CreatedAt:  now,
		},
	}
}

// SeedMessages 示例群聊记录，房间 2、1、4 为当前用户已加入的房间。
func SeedMessages(now time.Time) []domain.Message {
	const (
		alex   = "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=50"
		sam    = "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=50"
		me     = "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=50"
		jamie  = "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=50"
		sophie = "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=50"
	)
	return []domain.Message{
		{ID: "m2-1", RoomID: "2", SenderID: "alex", SenderName: "Alex Rivera", SenderAvatar: alex,
			Text: "Hey everyone! So excited for tonight 🎲", CreatedAt: now.Add(-2 * hour)},
		{ID: "m2-2", RoomID: "2", SenderID: "sam", SenderName: "Sam Kim", SenderAvatar: sam,
			Text: "Same here! I'm bringing Catan and Ticket to Ride", CreatedAt: now.Add(-90 * time.Minute)},
		{ID: "m2-3", RoomID: "2", SenderID: "me", SenderName: "You", SenderAvatar: me,
			Text: "Perfect! I'll bring some snacks and drinks 🍕", CreatedAt: now.Add(-45 * time.Minute)},
		{ID: "m2-4", RoomID: "2", SenderID: "jamie", SenderName: "Jamie Chen", SenderAvatar: jamie,
			Text: "Can't wait for tonight! Who's bringing snacks?", CreatedAt: now.Add(-5 * time.Minute)},
		{ID: "m1-1", RoomID: "1", SenderID: "alex", SenderName: "Alex Rivera", SenderAvatar: alex,
			Text: "Script revisions are done. Can we meet tomorrow?", CreatedAt: now.Add(-2 * hour)},
		{ID: "m4-1", RoomID: "4", SenderID: "sophie", SenderName: "Sophie Lee", SenderAvatar: sophie,
			Text: "Here's the location pin 📍", CreatedAt: now.Add(-day)},
	}
}
