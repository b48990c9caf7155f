package content

// DefaultWebsiteContent is served until an admin publishes an edit.
func DefaultWebsiteContent() WebsiteContent {
	return WebsiteContent{
		Home: HomePage{
			Hero: Hero{
				Headline:    "Your Smile, Our Priority.",
				Subheadline: "Advanced Dental Care with Painless Treatment protocols. Experience international standards of medical excellence.",
				Image:       "https://images.unsplash.com/photo-1606811841689-23dfddce3e95?auto=format&fit=crop&q=80&w=800",
			},
			Intro: Intro{
				Title:       "Advanced Solutions",
				Description: "Transforming dental care in Jalgaon with microscopic precision, ethical practices, and a 100% painless treatment focus.",
			},
			DoctorProfile: DoctorProfile{
				Name:            "Dr. mayur mahajan",
				Speciality:      "MDS - Endodontist & Implantologist",
				Qualifications:  "MDS (Endodontics), BDS, Fellowship in Oral Implantology",
				Bio:             "Dr. mayur mahajan is a renowned dental specialist in Jalgaon, known for his expertise in microscopic root canal treatments and digital implantology. With a focus on ethical practices and patient comfort, he has successfully treated thousands of complex dental cases, ensuring long-term results and pain-free experiences.",
				Image:           "https://images.jdmagicbox.com/v2/comp/jalgaon/q6/9999px257.x257.250912132318.t6q6/catalogue/dr-clips-jalgaon-bazar-jalgaon-dentists-p0gf6hljw6.jpg",
				YearsExperience: "10+",
				PatientsServed:  "15,000+",
			},
		},
		About: AboutPage{
			Story: Story{
				Title:        "10+ Years of Crafting Perfect Smiles",
				Description1: "CLIPS DENTAL CLINIC started as a humble practice with a single goal: to provide world-class dental solutions that are accessible and painless for the people of Jalgaon.",
				Description2: "Today, we are a leading multi-speciality dental hub, known for our precision in Root Canal treatments and Dental Implants.",
				Image:        "https://images.unsplash.com/photo-1629909613654-28e377c37b09?auto=format&fit=crop&q=80&w=800",
			},
			Mission: "To deliver exceptional dental care using ethical practices and the latest innovations, ensuring every patient walks out with a healthier smile and complete satisfaction.",
			Vision:  "To be the most trusted dental care provider in Maharashtra, recognized for setting benchmark standards in micro-dentistry and patient comfort.",
		},
		ServicesPage: ServicesPage{
			Header:      "Our Dental Expertise",
			Subhead:     "State-of-the-art dental care powered by advanced microscopic technology.",
			BannerTitle: "Can't Find What You're Looking For?",
			BannerText:  "We offer comprehensive oral diagnosis. Schedule a consultation and our specialists will perform a full check-up to create a personalized treatment path for you.",
		},
		GalleryPage: GalleryPage{
			Header:  "Our Showcase",
			Subhead: "Step inside our sterile, modern, and patient-centric clinic environment.",
		},
		AppointmentPage: AppointmentPage{
			Header:      "Reserve Your Slot",
			Subhead:     "Database-connected booking for seamless healthcare.",
			PortalTitle: "Clinical Portal",
			PortalTag:   "Cloud Database Connected",
		},
		ContactPage: ContactPage{
			Header:  "Contact Us",
			Subhead: "Have questions? We're here to help you with your dental journey.",
		},
	}
}

// DefaultSettings is the clinic's contact identity out of the box.
func DefaultSettings() ClinicSettings {
	return ClinicSettings{
		Name:     "CLIPS DENTAL CLINIC",
		Phone:    "+91 77748 46801",
		Phone2:   "07383618280",
		Whatsapp: "917774846801",
		Email:    "contact@clipsdentalclinic.in",
		Location: "Behind Panchmukhi Hanuman Mandir, Near By Harsiddhi Hospital, Sindhi Colony Road, Bazar, Jalgaon-425001, Maharashtra",
	}
}
