package main

import (
	"log"
	"time"

	"arabyprompts/internal/models"
	"arabyprompts/internal/repositories"
)

// seedStore populates the store with the launch catalog and demo accounts.
func seedStore(store *repositories.EntityStore, now time.Time) {
	store.ReplaceSiteConfig(models.SiteConfig{
		Name:        "ArabyPrompts",
		Description: "منصة برومتات الفيديو العربية",
	})
	store.ReplaceContentConfig(models.ContentConfig{
		HeroTitle:    "أطلق العنان لخيالك",
		HeroSubtitle: "المنصة العربية الأولى لتوليد ومشاركة أوصاف الفيديو للذكاء الاصطناعي.",
	})

	store.Users.Replace([]models.User{
		{
			ID: "u1", Name: "Admin User", Email: "admin@araby.com", Avatar: "https://ui-avatars.com/api/?name=Admin",
			Role: models.RoleAdmin, Plan: models.PlanPro, Stats: models.UserStats{Prompts: 100, Likes: 500, Followers: 200},
			Points: 5000, RankTitle: "Legend",
			JoinedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), LastActiveAt: now,
		},
		{
			ID: "u2", Name: "Demo User", Email: "user@demo.com", Avatar: "https://ui-avatars.com/api/?name=User",
			Role: models.RoleUser, Plan: models.PlanFree, Stats: models.UserStats{Prompts: 5, Likes: 10, Followers: 0},
			Points: 50, RankTitle: "Novice",
			JoinedAt: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), LastActiveAt: now.Add(-24 * time.Hour),
		},
	})

	store.Sections.Replace([]models.Section{
		{ID: "home", Label: "الرئيسية", Icon: models.IconHome, IsVisible: true},
		{ID: "generator", Label: "توليد برومت", Icon: models.IconGenerator, IsVisible: true},
		{ID: "community", Label: "المجتمع", Icon: models.IconCommunity, IsVisible: true},
		{ID: "learn", Label: "أكاديمية", Icon: models.IconLearn, IsVisible: true},
	})

	store.Services.Replace([]models.Service{
		{ID: "1", Name: "Premium Prompt Generation", Status: models.ServiceActive, Price: "$9.99/mo", Description: "Unlimited high-quality prompt generation."},
		{ID: "2", Name: "Video Review Service", Status: models.ServiceActive, Price: "$29.00", Description: "Expert feedback on your AI generated videos."},
	})

	store.Styles.Replace([]models.PromptStyle{
		{ID: "cinematic", Label: "Cinematic", Value: "cinematic", Suffix: "cinematic lighting, anamorphic lens, 8k, highly detailed"},
		{ID: "anime", Label: "Anime", Value: "anime", Suffix: "studio ghibli style, vibrant colors, cell shaded, 2d animation"},
		{ID: "3d-animation", Label: "3D Animation", Value: "3d", Suffix: "pixar style, unreal engine 5, octane render, disney character"},
		{ID: "cyberpunk", Label: "Cyberpunk", Value: "cyberpunk", Suffix: "neon lights, futuristic city, high tech, rain, reflections"},
	})

	store.Ads.Replace([]models.Ad{
		{ID: "ad-1", Type: models.AdBanner, Label: "Summer Sale", ImageURL: "https://picsum.photos/seed/ad1/1200/200", LinkURL: "#", Placement: models.PlacementBelowServices, IsActive: true},
		{ID: "ad-native-1", Type: models.AdNative, Label: "Tool Promo", Title: "Enhance Your Workflow", Description: "Use our new AI tools to fix your prompts instantly.", ImageURL: "https://picsum.photos/seed/tech/400/300", LinkURL: "#", IsActive: true},
	})

	store.Bundles.Replace([]models.PromptBundle{
		{ID: "b1", Title: "Starter Pack", Description: "Essential prompts for beginners", CoverImage: "https://picsum.photos/seed/pack1/300/200", Price: "Free", PromptsCount: 15, Tags: []string{"Basic"}},
		{ID: "b2", Title: "Cinematic Master", Description: "Hollywood style shots", CoverImage: "https://picsum.photos/seed/pack2/300/200", Price: "$5", PromptsCount: 50, Tags: []string{"Pro"}},
	})

	store.Courses.Replace([]models.Course{
		{ID: "1", Title: "أساسيات كتابة البرومت", Level: models.LevelBeginner, Duration: "45 دقيقة", Students: 1245, Thumbnail: "https://picsum.photos/seed/learn1/600/400"},
		{ID: "2", Title: "إتقان حركة الكاميرا والزوايا", Level: models.LevelIntermediate, Duration: "1.5 ساعة", Students: 850, Thumbnail: "https://picsum.photos/seed/learn2/600/400", Progress: 30},
		{ID: "3", Title: "الإضاءة السينمائية في AI", Level: models.LevelAdvanced, Duration: "2 ساعة", Students: 540, Thumbnail: "https://picsum.photos/seed/learn3/600/400"},
	})

	store.Posts.Replace(seedPosts(now))

	log.Printf("Seeded store: %d users, %d ads, %d posts", len(store.Users.List()), len(store.Ads.List()), len(store.Posts.List()))
}

func seedPosts(now time.Time) []models.PromptPost {
	ahmed := models.User{ID: "u1", Name: "أحمد محمد", Email: "a@a.com", Avatar: "https://picsum.photos/seed/u1/100/100", Role: models.RolePro, Plan: models.PlanPro, Stats: models.UserStats{Prompts: 10, Likes: 50, Followers: 100}, Points: 1250, RankTitle: "Master"}
	sara := models.User{ID: "u2", Name: "سارة علي", Email: "s@s.com", Avatar: "https://picsum.photos/seed/u2/100/100", Role: models.RoleUser, Plan: models.PlanFree, Stats: models.UserStats{Prompts: 5, Likes: 20, Followers: 10}, Points: 450, RankTitle: "Creator"}
	karim := models.User{ID: "u3", Name: "كريم حسن", Email: "k@k.com", Avatar: "https://picsum.photos/seed/u3/100/100", Role: models.RoleUser, Plan: models.PlanFree, Stats: models.UserStats{Prompts: 2, Likes: 10, Followers: 5}, Points: 100, RankTitle: "Novice"}
	newbie := func(id, name string) models.User {
		return models.User{ID: id, Name: name, Avatar: "https://picsum.photos/seed/" + id + "/100/100", Role: models.RoleUser, Plan: models.PlanFree, Points: 10, RankTitle: "New"}
	}
	day := 24 * time.Hour

	return []models.PromptPost{
		{
			ID: "1", Title: "المدينة العائمة في السحاب",
			Description: "Cinematic wide shot, a futuristic city floating above golden clouds, golden hour lighting, 8k resolution, highly detailed.",
			Author:      ahmed, Likes: 234, Views: 1200, Tags: []string{"Sci-Fi", "Clouds", "City"},
			ImageURL: "https://picsum.photos/seed/cloudcity/800/450", CreatedAt: now.Add(-2 * time.Hour), Category: models.CategoryCinematic,
			Comments: []models.Comment{{ID: "c1", User: karim, Text: "وصف رائع جداً! هل جربت استخدامه مع Midjourney؟", CreatedAt: now.Add(-time.Hour)}},
		},
		{
			ID: "2", Title: "سباق سيارات سايبر بانك",
			Description: "Cyberpunk style, neon lights reflection on wet asphalt, high speed car chase, motion blur, rain drops.",
			Author:      sara, Likes: 156, Views: 890, Tags: []string{"Cyberpunk", "Cars", "Neon"},
			ImageURL: "https://picsum.photos/seed/cyber/800/450", CreatedAt: now.Add(-5 * time.Hour), Category: models.CategoryCyberpunk,
		},
		{
			ID: "3", Title: "غابة مسحورة قديمة",
			Description: "Fantasy forest, glowing mushrooms, fairy lights, mist, macro shot of a magical flower opening, 4k.",
			Author:      karim, Likes: 89, Views: 450, Tags: []string{"Nature", "Fantasy", "Magic"},
			ImageURL: "https://picsum.photos/seed/forest/800/450", CreatedAt: now.Add(-day), Category: models.CategoryRealistic,
		},
		{ID: "4", Title: "بورتريه فني", Description: "Oil painting style, portrait of an old man.", Author: newbie("u1", "أحمد"), Likes: 45, Views: 200, ImageURL: "https://picsum.photos/seed/p4/800/450", CreatedAt: now.Add(-2 * day), Category: models.CategoryRealistic},
		{ID: "5", Title: "فضاء خارجي", Description: "Deep space, nebula, stars.", Author: newbie("u2", "سارة"), Likes: 112, Views: 500, ImageURL: "https://picsum.photos/seed/p5/800/450", CreatedAt: now.Add(-3 * day), Category: models.CategoryCinematic},
		{ID: "6", Title: "روبوت مستقبلي", Description: "3D render of a cute robot.", Author: newbie("u3", "كريم"), Likes: 67, Views: 300, ImageURL: "https://picsum.photos/seed/p6/800/450", CreatedAt: now.Add(-3 * day), Category: models.Category3D},
		{ID: "7", Title: "غروب الشمس", Description: "Sunset at the beach.", Author: newbie("u1", "أحمد"), Likes: 88, Views: 400, ImageURL: "https://picsum.photos/seed/p7/800/450", CreatedAt: now.Add(-4 * day), Category: models.CategoryRealistic},
	}
}
