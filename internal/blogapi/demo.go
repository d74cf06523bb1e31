package blogapi

import "strings"

// demoPosts 内置示例数据，远端不可用且开启回退时使用
var demoPosts = []Post{
	{
		ID:          1,
		Title:       "The Psychology of Happiness: Understanding What Truly Makes Us Happy",
		Description: "Explore the fascinating world of positive psychology and discover the science behind lasting happiness...",
		Content:     "Positive psychology is a branch of psychology that focuses on the study of positive emotions, strengths, and factors that contribute to a fulfilling life. This article explores the key principles and practical applications of positive psychology in daily life.",
		Author:      "Pataveekorn C.",
		Date:        "2024-12-15T00:00:00.000Z",
		Category:    "Inspiration",
		Likes:       45,
	},
	{
		ID:          2,
		Title:       "The Power of Daily Habits: Small Changes, Big Results",
		Description: "Discover how small daily habits can transform your life and help you achieve your long-term goals...",
		Content:     "Habits are the foundation of personal success. This article explores how small, consistent actions can lead to significant life changes over time, including practical strategies for habit formation and maintenance.",
		Author:      "Pataveekorn C.",
		Date:        "2024-12-10T00:00:00.000Z",
		Category:    "General",
		Likes:       32,
	},
	{
		ID:          3,
		Title:       "Mindfulness and Meditation: Finding Peace in a Busy World",
		Description: "Learn practical mindfulness techniques to reduce stress and find inner peace in your daily life...",
		Content:     "In our fast-paced world, mindfulness and meditation offer powerful tools for managing stress and finding inner peace. This guide provides practical techniques and exercises for beginners and experienced practitioners alike.",
		Author:      "Pataveekorn C.",
		Date:        "2024-12-08T00:00:00.000Z",
		Category:    "Inspiration",
		Likes:       67,
	},
	{
		ID:          4,
		Title:       "Building Resilience: How to Bounce Back from Life's Challenges",
		Description: "Learn the key principles of resilience and how to develop this crucial life skill...",
		Content:     "Resilience is the ability to adapt and bounce back from adversity. This comprehensive guide covers the key components of resilience and provides practical strategies for building this essential life skill.",
		Author:      "Pataveekorn C.",
		Date:        "2024-12-03T00:00:00.000Z",
		Category:    "General",
		Likes:       28,
	},
	{
		ID:          5,
		Title:       "The Art of Time Management: Maximizing Productivity in Your Daily Life",
		Description: "Learn effective time management strategies to boost your productivity and achieve your goals...",
		Content:     "Time management is a crucial skill for success in both personal and professional life. This article provides practical techniques and tools for better time management.",
		Author:      "Pataveekorn C.",
		Date:        "2024-11-28T00:00:00.000Z",
		Category:    "General",
		Likes:       41,
	},
	{
		ID:          6,
		Title:       "Digital Detox: Reclaiming Your Life from Technology",
		Description: "Discover the benefits of taking breaks from technology and how to implement a digital detox...",
		Content:     "In our hyperconnected world, taking time away from technology can have profound benefits for mental health and well-being. Learn how to implement a successful digital detox.",
		Author:      "Pataveekorn C.",
		Date:        "2024-11-25T00:00:00.000Z",
		Category:    "Inspiration",
		Likes:       33,
	},
	{
		ID:          7,
		Title:       "The Science of Sleep: Why Quality Rest Matters",
		Description: "Explore the importance of sleep for health, productivity, and overall well-being...",
		Content:     "Sleep is one of the most important factors for physical and mental health. This comprehensive guide covers the science of sleep and practical tips for better rest.",
		Author:      "Pataveekorn C.",
		Date:        "2024-11-20T00:00:00.000Z",
		Category:    "General",
		Likes:       56,
	},
	{
		ID:          8,
		Title:       "Creative Problem Solving: Thinking Outside the Box",
		Description: "Learn innovative approaches to problem-solving that can help you overcome challenges...",
		Content:     "Creative problem-solving involves looking at challenges from new perspectives and finding innovative solutions. This article explores various techniques and approaches.",
		Author:      "Pataveekorn C.",
		Date:        "2024-11-15T00:00:00.000Z",
		Category:    "Inspiration",
		Likes:       29,
	},
}

// demoPage 在示例数据上执行与远端一致的过滤与分页
func demoPage(opts FetchOptions) *Page {
	filtered := make([]Post, 0, len(demoPosts))
	for _, post := range demoPosts {
		if !demoMatch(post, opts) {
			continue
		}
		filtered = append(filtered, post)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultFetchLimit
	}
	page := opts.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	return &Page{
		Posts:       filtered[start:end],
		CurrentPage: page,
		TotalPages:  ceilDiv(len(filtered), limit),
		TotalPosts:  len(filtered),
	}
}

func demoMatch(post Post, opts FetchOptions) bool {
	if category := strings.TrimSpace(opts.Category); category != "" && category != "highlight" {
		if !strings.EqualFold(post.Category, category) {
			return false
		}
	}
	if keyword := strings.ToLower(strings.TrimSpace(opts.Keyword)); keyword != "" {
		haystack := strings.ToLower(post.Title + " " + post.Description + " " + post.Content)
		if !strings.Contains(haystack, keyword) {
			return false
		}
	}
	return true
}

func demoPost(id int64) *Post {
	for _, post := range demoPosts {
		if post.ID == id {
			copied := post
			return &copied
		}
	}
	return nil
}
