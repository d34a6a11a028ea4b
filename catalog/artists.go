package catalog

import (
	artistModel "tattoo-booking/models/artist"
)

// Artists is the studio roster. Entries are immutable; lookups go
// through ByID / Visible rather than mutating this slice.
var Artists = []artistModel.Artist{
	{
		ID:          "jing",
		Name:        "Jingxi Gu",
		DisplayName: "Jing",
		Category:    artistModel.CategoryLead,
		Experience:  "9 years",
		Deposit:     300,
		Specialties: []string{"Asian Traditional", "Chinese brush painting style", "Freehand tattoos"},
		Description: "Jing mainly does big cohesive tattoos in Asian Traditional style, such as full sleeves. She also does small colorful tattoos in semi realism or Chinese brush painting style. Jing specializes in making the tattoo perfectly fit with the body. She prefers to use subtle colors that fit with the skin tone instead of using vibrant colors. She also uses a lot of freehand techniques to allow the tattoo fit with the body the best.",
		Instagram:   "@tattooartist_jing",
		Avatar:      "https://res.cloudinary.com/dkzykupcc/image/upload/artists/jing",
		Video:       "https://res.cloudinary.com/dkzykupcc/video/upload/f_auto,q_auto/artists/videos/intro_jing.mp4",
		Portfolio: []string{
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/jing/work_1.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/jing/work_2.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/jing/work_3.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/jing/work_4.jpg",
		},
		Pricing: &artistModel.Pricing{
			DayRate:       2500,
			HalfDay:       "N/A",
			Minimum:       "N/A",
			TouchUp:       "Free",
			CoverUpExtra:  "500-1000",
			FlashDiscount: "70% of full price",
		},
		SpecialNote: "Jing specializes in large, complex tattoos that require extensive design time. After confirming your design requirements, Jing will collect an additional $500-1000 design deposit (which will be deducted from the final price along with your $300 booking deposit).",
		Reviews: []artistModel.Review{
			{Name: "Marcus L.", Rating: 5, Text: "Jing created an incredible full sleeve dragon in traditional Asian style. Her freehand technique is amazing - she drew directly on my arm to make it flow perfectly with my body. The subtle color choices complement my skin tone beautifully. Worth every penny for such masterful work!"},
			{Name: "Sarah K.", Rating: 5, Text: "I got a large koi fish and cherry blossom piece from Jing. Her understanding of traditional Asian symbolism and brush painting techniques is unmatched. She spent hours perfecting the design to fit my back perfectly. The healing process was smooth and the final result is breathtaking."},
		},
	},
	{
		ID:          "rachel",
		Name:        "Rachel Hong",
		DisplayName: "Rachel",
		Category:    artistModel.CategorySenior,
		Experience:  "3 years",
		Deposit:     100,
		Specialties: []string{"Small color realism", "Manga tattoos", "Watercolor tattoos"},
		Description: "Rachel specializes in bold, colorful tattoos that are built to last. She often works with panel-style compositions and watercolor-inspired designs, blending structure with fluidity. Rachel's artistry shines through her use of vibrant palettes, with a strong focus on floral, nature, and Asian-inspired themes. Known for her excellent saturation and clean execution, her work maintains vibrancy and longevity over time.",
		Instagram:   "@rachel_tattooartist",
		Avatar:      "https://res.cloudinary.com/dkzykupcc/image/upload/artists/rachel",
		Video:       "https://res.cloudinary.com/dkzykupcc/video/upload/f_auto,q_auto/artists/videos/intro_rachel.mp4",
		Portfolio: []string{
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/rachel/work_1.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/rachel/work_2.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/rachel/work_3.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/rachel/work_4.jpg",
		},
		Pricing: &artistModel.Pricing{
			DayRate:       800,
			HalfDay:       "600",
			Minimum:       "300",
			TouchUp:       "Free",
			CoverUpExtra:  "100-500",
			FlashDiscount: "70% of full price",
		},
		Reviews: []artistModel.Review{
			{Name: "Emma T.", Rating: 5, Text: "Rachel did the most vibrant strawberry tattoo on my wrist! The colors are so saturated and beautiful. She perfectly captured the anime style I wanted. Even after 6 months, the colors are still as bright as day one. Her attention to detail in small pieces is incredible!"},
			{Name: "Jake M.", Rating: 5, Text: "Got a watercolor gaming controller from Rachel and it's absolutely perfect! The color blending technique she uses is phenomenal. She really understands how to make small tattoos pop with vibrant colors. The healing was great and it looks exactly like the reference art I showed her."},
		},
	},
	{
		ID:          "jasmine",
		Name:        "Jasmine Hsueh",
		DisplayName: "Jas",
		Category:    artistModel.CategorySenior,
		Experience:  "3 years",
		Deposit:     100,
		Specialties: []string{"Fine line", "Asian topic tattoos", "Ink wash"},
		Description: "Jasmine mainly does fine line tattoos, sometimes with a little bit color, or some shading. She works a lot with Asian topics such as koi fish and Yin Yang symbols. Jasmine is a great communicator and always satisfies her clients with good designs. She has very clean lines, and pays great attention to the details.",
		Instagram:   "@jascreates.tattoo",
		Avatar:      "https://res.cloudinary.com/dkzykupcc/image/upload/artists/jasmine",
		Video:       "https://res.cloudinary.com/dkzykupcc/video/upload/f_auto,q_auto/artists/videos/intro_jasmine.mp4",
		Portfolio: []string{
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/jasmine/work_1.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/jasmine/work_2.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/jasmine/work_3.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/jasmine/work_4.jpg",
		},
		Pricing: &artistModel.Pricing{
			DayRate:       800,
			HalfDay:       "600",
			Minimum:       "300",
			TouchUp:       "Free",
			CoverUpExtra:  "100-500",
			FlashDiscount: "70% of full price",
		},
		Reviews: []artistModel.Review{
			{Name: "Lily C.", Rating: 5, Text: "Jasmine created the most delicate fine line koi fish on my ankle. Her linework is incredibly precise and clean. She explained the symbolism behind the design and made sure every detail was perfect. The communication throughout the process was excellent - she really listens to what you want."},
			{Name: "David R.", Rating: 5, Text: "Got a minimalist yin yang with subtle shading from Jas. Her fine line technique is flawless - every line is perfectly straight and consistent. She has such a gentle touch and the healing was incredibly smooth. The attention to detail in such a small piece is remarkable!"},
		},
	},
	{
		ID:          "lauren",
		Name:        "Lauren Hacaga",
		DisplayName: "Lauren",
		Category:    artistModel.CategoryJunior,
		Experience:  "1 year",
		Deposit:     100,
		Specialties: []string{"Black n grey", "Nature tattoos", "Anime/manga"},
		Description: "Lauren mainly does tattoos in black and gray, sometimes with a hint of color. She works a lot with pet portraits and all types of bugs. Lauren is very caring for her clients, and she pays great attention to the details. Lauren also loves manga and would like to work more with manga or anime themes.",
		Instagram:   "@laurtattoos",
		Avatar:      "https://res.cloudinary.com/dkzykupcc/image/upload/artists/lauren",
		Video:       "https://res.cloudinary.com/dkzykupcc/video/upload/f_auto,q_auto/artists/videos/intro_lauren.mp4",
		Portfolio: []string{
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/lauren/work_1.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/lauren/work_2.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/lauren/work_3.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/lauren/work_4.jpg",
		},
		Pricing: &artistModel.Pricing{
			DayRate:       400,
			HalfDay:       "250",
			Minimum:       "100",
			TouchUp:       "Free",
			CoverUpExtra:  "100-500",
			FlashDiscount: "70% of full price",
		},
		Reviews: []artistModel.Review{
			{Name: "Michelle P.", Rating: 5, Text: "Lauren did an amazing black and gray portrait of my dog who passed away. The realism is incredible - she captured every detail of his expression perfectly. She was so caring and understanding throughout the emotional process. The shading work is phenomenal for someone with just 1 year of experience!"},
			{Name: "Alex B.", Rating: 5, Text: "Got a detailed beetle tattoo from Lauren and I'm blown away! Her knowledge of insect anatomy is impressive and the black work is so crisp. She added just a tiny hint of color that makes it pop. Lauren is super sweet and made me feel comfortable during my first tattoo experience."},
		},
	},
	{
		ID:          "annika",
		Name:        "Annika Riggins",
		DisplayName: "Annika",
		Category:    artistModel.CategoryJunior,
		Experience:  "1 year",
		Deposit:     100,
		Specialties: []string{"Line work", "Vintage tattoos", "Black tattoos"},
		Description: "Annika has unique designer background and her tattoos are one of a kind. Her designs have a blend of traditional antique look with a modern touch. She mainly does line work, sometimes with a little bit shading.",
		Instagram:   "@annikatattoos",
		Avatar:      "https://res.cloudinary.com/dkzykupcc/image/upload/artists/annika",
		Video:       "https://res.cloudinary.com/dkzykupcc/video/upload/f_auto,q_auto/artists/videos/intro_annika.mp4",
		Hidden:      true,
		Portfolio: []string{
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/annika/work_1.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/annika/work_2.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/annika/work_3.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/annika/work_4.jpg",
		},
		Pricing: &artistModel.Pricing{
			DayRate:       400,
			HalfDay:       "250",
			Minimum:       "100",
			TouchUp:       "Free",
			CoverUpExtra:  "100-500",
			FlashDiscount: "70% of full price",
		},
		Reviews: []artistModel.Review{
			{Name: "Sophie W.", Rating: 5, Text: "Annika designed the most unique vintage-inspired piece for me! Her designer background really shows - the composition is perfect and unlike anything I've seen before. The antique aesthetic with modern elements is exactly what I was looking for. Her artistic vision is incredible!"},
			{Name: "Ryan H.", Rating: 5, Text: "Got a vintage pocket watch design from Annika and it's absolutely one of a kind! Her line work is so clean and the traditional style with modern touches is perfect. She really took time to understand my vision and created something completely custom. Her design skills are top-notch!"},
		},
	},
	{
		ID:          "maili",
		Name:        "Maili Cohen",
		DisplayName: "Maili",
		Category:    artistModel.CategoryApprentice,
		Deposit:     50,
		PriceRange:  "$50-100",
		Description: "Maili is currently under apprenticeship training and developing her artistic skills.",
		Avatar:      "https://res.cloudinary.com/dkzykupcc/image/upload/artists/maili",
		Video:       "https://res.cloudinary.com/dkzykupcc/video/upload/f_auto,q_auto/artists/videos/intro_maili.mp4",
		Portfolio: []string{
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/maili/work_1.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/maili/work_2.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/maili/work_3.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/maili/work_4.jpg",
		},
		Reviews: []artistModel.Review{
			{Name: "Taylor M.", Rating: 5, Text: "Maili did my first tattoo and made the experience so comfortable! Even as an apprentice, her attention to detail is amazing. She took her time to make sure everything was perfect and the line work came out clean. Great value and she's definitely going to be an incredible artist!"},
			{Name: "Jordan K.", Rating: 5, Text: "Really impressed with Maili's work! She may be an apprentice but her dedication shows. She was super careful with every line and asked for feedback throughout. The final result exceeded my expectations for the price point. Can't wait to see how her skills develop!"},
		},
	},
	{
		ID:          "keani",
		Name:        "Keani Chavez",
		DisplayName: "Keani",
		Category:    artistModel.CategoryApprentice,
		Deposit:     50,
		PriceRange:  "$50-100",
		Description: "Keani is currently under apprenticeship training and developing her artistic skills.",
		Avatar:      "https://res.cloudinary.com/dkzykupcc/image/upload/artists/keani",
		Video:       "https://res.cloudinary.com/dkzykupcc/video/upload/f_auto,q_auto/artists/videos/intro_keani.mp4",
		Portfolio: []string{
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/keani/work_1.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/keani/work_2.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/keani/work_3.jpg",
			"https://res.cloudinary.com/dkzykupcc/image/upload/portfolio/keani/work_4.jpg",
		},
		Reviews: []artistModel.Review{
			{Name: "Casey L.", Rating: 5, Text: "Keani was so sweet and professional during my session! She's still learning but her passion for tattooing really shows. She took extra care with the stencil placement and made sure I was happy with every step. The simple design came out exactly how I wanted it!"},
			{Name: "Morgan D.", Rating: 5, Text: "Had a great experience with Keani for a small script tattoo. She was nervous but so focused on doing her best work. Her mentor was nearby for guidance which made me feel confident. The lettering is clean and straight. Excited to watch her grow as an artist!"},
		},
	},
}
