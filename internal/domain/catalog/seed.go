package catalog

// Default catalog content installed on a fresh store.

func defaultTreatments() []Treatment {
	return []Treatment{
		{
			ID:              "general-dentistry",
			Title:           "General Dentistry",
			Description:     "Comprehensive check-ups and preventative care for all age groups.",
			LongDescription: "We provide routine oral examinations, high-quality composite fillings, and detailed consultations to ensure your primary dental health is always maintained at its peak.",
			Benefits:        []string{"Cavity Prevention", "Oral Health Education", "Early Problem Detection"},
			IconName:        "Stethoscope",
		},
		{
			ID:              "root-canal",
			Title:           "Root Canal Treatment",
			Description:     "Expert endodontic treatment to save your natural teeth painlessly.",
			LongDescription: "Our single-visit root canal treatments utilize rotary endodontics and digital apex locators for 100% precision and comfort, saving your tooth from extraction.",
			Benefits:        []string{"Pain Elimination", "Natural Tooth Preservation", "Quick Single-Visit Options"},
			IconName:        "Activity",
		},
		{
			ID:              "cleaning-scaling",
			Title:           "Teeth Cleaning & Scaling",
			Description:     "Professional plaque removal and gum health maintenance.",
			LongDescription: "Ultrasonic scaling and polishing to remove stubborn tartar and stains, preventing gum diseases like gigivitis and periodontitis.",
			Benefits:        []string{"Fresh Breath", "Healthier Gums", "Stain Removal"},
			IconName:        "Sparkles",
		},
		{
			ID:              "teeth-whitening",
			Title:           "Teeth Whitening",
			Description:     "Clinical brightening for a radiant, movie-star smile.",
			LongDescription: "Advanced laser whitening techniques that can brighten your teeth up to 8 shades in just 45 minutes, with zero sensitivity.",
			Benefits:        []string{"Instant Confidence", "Safe Enamel Care", "Long-lasting Brilliance"},
			IconName:        "Zap",
		},
		{
			ID:              "dental-implants",
			Title:           "Dental Implants",
			Description:     "The gold standard for missing tooth replacement.",
			LongDescription: "Titanium implants that look, feel, and function exactly like natural teeth, providing a lifelong solution for tooth loss.",
			Benefits:        []string{"Lifelong Durability", "Preserves Jawbone", "Natural Functionality"},
			IconName:        "Smile",
		},
		{
			ID:              "braces-aligners",
			Title:           "Braces & Aligners",
			Description:     "Straighten your smile with modern orthodontic solutions.",
			LongDescription: "Choose between traditional ceramic braces or clear invisible aligners for a discreet way to correct crowded or gapped teeth.",
			Benefits:        []string{"Perfect Alignment", "Invisible Options", "Improved Bite Force"},
			IconName:        "CalendarCheck",
		},
		{
			ID:              "cosmetic-dentistry",
			Title:           "Cosmetic Dentistry",
			Description:     "Veneers and smile designing for the perfect look.",
			LongDescription: "E-max veneers and porcelain crowns designed digitally to enhance your facial aesthetics and give you the smile you've always dreamed of.",
			Benefits:        []string{"Custom Smile Design", "Aesthetic Correction", "Durable Veneers"},
			IconName:        "UserCheck",
		},
		{
			ID:              "pediatric-dentistry",
			Title:           "Pediatric Dentistry",
			Description:     "Specialized and gentle care for children.",
			LongDescription: "A child-friendly atmosphere where our specialists handle your little one's dental needs with patience, from milk tooth care to habit breaking.",
			Benefits:        []string{"Child-Centric Approach", "Fun Environment", "Preventive Care"},
			IconName:        "Baby",
		},
		{
			ID:              "emergency-care",
			Title:           "Emergency Dental Care",
			Description:     "Immediate relief for acute pain and dental trauma.",
			LongDescription: "Suffering from a sudden toothache or broken tooth? We offer priority emergency slots to provide instant pain relief and stabilization.",
			Benefits:        []string{"24/7 Phone Support", "Immediate Pain Relief", "Emergency Extractions"},
			IconName:        "ShieldAlert",
		},
	}
}

func defaultTestimonials() []Testimonial {
	return []Testimonial{
		{
			ID:     "1",
			Name:   "Anil Mahajan",
			Rating: 5,
			Text:   "Best dentist in Jalgaon! Dr. Sameer explained the procedure very well. My Root Canal was totally painless. Highly recommend CLIPS!",
			Date:   "15 days ago",
		},
		{
			ID:     "2",
			Name:   "Meena Kulkarni",
			Rating: 5,
			Text:   "The clinic is extremely clean and modern. I got my teeth whitening done here and the results are amazing. Very professional staff.",
			Date:   "1 month ago",
		},
		{
			ID:     "3",
			Name:   "Dr. Vivek Patil",
			Rating: 5,
			Text:   "As a fellow doctor, I can attest to the high sterilization standards at CLIPS. Great use of technology and very patient-friendly approach.",
			Date:   "2 months ago",
		},
	}
}

func defaultGallery() []GalleryItem {
	return []GalleryItem{
		{ID: "g1", URL: "https://images.unsplash.com/photo-1629909613654-28e377c37b09?auto=format&fit=crop&q=80&w=800", Category: CategoryInterior, Title: "Premium Reception"},
		{ID: "g2", URL: "https://images.unsplash.com/photo-1588776814546-1ffce47267a5?auto=format&fit=crop&q=80&w=800", Category: CategoryEquipment, Title: "Advanced Dental Unit"},
		{ID: "g3", URL: "https://images.unsplash.com/photo-1598256989800-fe5f95da9787?auto=format&fit=crop&q=80&w=800", Category: CategoryEnvironment, Title: "Sterile Operatory"},
		{ID: "g4", URL: "https://images.unsplash.com/photo-1445527815219-ecbfec67492e?auto=format&fit=crop&q=80&w=800", Category: CategoryInterior, Title: "Consultation Zone"},
		{ID: "g5", URL: "https://images.unsplash.com/photo-1516549655169-df83a0774514?auto=format&fit=crop&q=80&w=800", Category: CategoryEquipment, Title: "Digital X-Ray Suite"},
		{ID: "g6", URL: "https://images.unsplash.com/photo-1629909615184-74f495363b67?auto=format&fit=crop&q=80&w=800", Category: CategoryEnvironment, Title: "Patient Lounge"},
	}
}
