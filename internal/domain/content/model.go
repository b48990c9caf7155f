// Package content manages the two singleton documents behind the
// public website: the editable page copy and the clinic settings.
package content

type Hero struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	Image       string `json:"image"`
}

type Intro struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type DoctorProfile struct {
	Name            string `json:"name"`
	Speciality      string `json:"speciality"`
	Qualifications  string `json:"qualifications"`
	Bio             string `json:"bio"`
	Image           string `json:"image"`
	YearsExperience string `json:"yearsExperience"`
	PatientsServed  string `json:"patientsServed"`
}

type HomePage struct {
	Hero          Hero          `json:"hero"`
	Intro         Intro         `json:"intro"`
	DoctorProfile DoctorProfile `json:"doctorProfile"`
}

type Story struct {
	Title        string `json:"title"`
	Description1 string `json:"description1"`
	Description2 string `json:"description2"`
	Image        string `json:"image"`
}

type AboutPage struct {
	Story   Story  `json:"story"`
	Mission string `json:"mission"`
	Vision  string `json:"vision"`
}

type ServicesPage struct {
	Header      string `json:"header"`
	Subhead     string `json:"subhead"`
	BannerTitle string `json:"bannerTitle"`
	BannerText  string `json:"bannerText"`
}

type GalleryPage struct {
	Header  string `json:"header"`
	Subhead string `json:"subhead"`
}

type AppointmentPage struct {
	Header      string `json:"header"`
	Subhead     string `json:"subhead"`
	PortalTitle string `json:"portalTitle"`
	PortalTag   string `json:"portalTag"`
}

type ContactPage struct {
	Header  string `json:"header"`
	Subhead string `json:"subhead"`
}

// WebsiteContent is the whole editable copy of the public site, stored
// and replaced as a single document.
type WebsiteContent struct {
	Home            HomePage        `json:"home"`
	About           AboutPage       `json:"about"`
	ServicesPage    ServicesPage    `json:"servicesPage"`
	GalleryPage     GalleryPage     `json:"galleryPage"`
	AppointmentPage AppointmentPage `json:"appointmentPage"`
	ContactPage     ContactPage     `json:"contactPage"`
}

// ClinicSettings holds the contact identity shown across the site.
type ClinicSettings struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Phone2   string `json:"phone2"`
	Whatsapp string `json:"whatsapp"`
	Email    string `json:"email"`
	Location string `json:"location"`
}
