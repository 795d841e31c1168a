// ABOUTME: Request and response models for the PetRadar REST API
// ABOUTME: Field names mirror the remote swagger contract (camelCase JSON)

package api

import "strings"

// LoginRequest is the body for POST /api/gate/Login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the token payload returned by login and refresh.
// Note the API does not return the user id; identity is resolved separately.
type LoginResponse struct {
	Token                  string `json:"token"`
	TokenValidTo           string `json:"tokenValidTo,omitempty"`
	RefreshToken           string `json:"refreshToken,omitempty"`
	RefreshTokenExpiryTime string `json:"refreshTokenExpiryTime,omitempty"`
}

// RefreshRequest is the body for POST /api/gate/Login/refresh
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RegisterRequest is the body for POST /api/Users. Registration does not
// return a token; callers log in afterwards.
type RegisterRequest struct {
	Email               string  `json:"email"`
	Password            string  `json:"password"`
	Name                string  `json:"name"`
	LastName            *string `json:"lastName,omitempty"`
	PhoneNumber         *string `json:"phoneNumber,omitempty"`
	OrganizationName    *string `json:"organizationName,omitempty"`
	OrganizationAddress *string `json:"organizationAddress,omitempty"`
	OrganizationPhone   *string `json:"organizationPhone,omitempty"`
	Role                string  `json:"role"`
}

// UserProfile is the user record returned by the Users endpoints
type UserProfile struct {
	ID                  int64  `json:"id"`
	Email               string `json:"email"`
	Name                string `json:"name"`
	LastName            string `json:"lastName,omitempty"`
	PhoneNumber         string `json:"phoneNumber,omitempty"`
	ProfilePhotoURL     string `json:"profilePhotoURL,omitempty"`
	Role                string `json:"role,omitempty"`
	OrganizationName    string `json:"organizationName,omitempty"`
	OrganizationAddress string `json:"organizationAddress,omitempty"`
	OrganizationPhone   string `json:"organizationPhone,omitempty"`
}

// DisplayName joins first and last name the way the app shows users
func (u UserProfile) DisplayName() string {
	return strings.TrimSpace(u.Name + " " + u.LastName)
}

// UserUpdate is the partial-update body for PUT /api/Users/{id}.
// Every field is optional; nil means "leave unchanged".
type UserUpdate struct {
	Email               *string `json:"email,omitempty"`
	Password            *string `json:"password,omitempty"`
	Name                *string `json:"name,omitempty"`
	LastName            *string `json:"lastName,omitempty"`
	PhoneNumber         *string `json:"phoneNumber,omitempty"`
	OrganizationName    *string `json:"organizationName,omitempty"`
	OrganizationAddress *string `json:"organizationAddress,omitempty"`
	OrganizationPhone   *string `json:"organizationPhone,omitempty"`
	Role                *string `json:"role,omitempty"`
}

func (u *UserUpdate) normalize() {
	u.Email = normalized(u.Email)
	u.Password = normalized(u.Password)
	u.Name = normalized(u.Name)
	u.LastName = normalized(u.LastName)
	u.PhoneNumber = normalized(u.PhoneNumber)
	u.OrganizationName = normalized(u.OrganizationName)
	u.OrganizationAddress = normalized(u.OrganizationAddress)
	u.OrganizationPhone = normalized(u.OrganizationPhone)
	u.Role = normalized(u.Role)
}

// Pet is the pet record returned by the UserPets endpoints
type Pet struct {
	ID                  int64   `json:"id"`
	UserID              int64   `json:"userId"`
	Name                string  `json:"name,omitempty"`
	Species             string  `json:"species,omitempty"`
	Breed               string  `json:"breed,omitempty"`
	Color               string  `json:"color,omitempty"`
	Sex                 string  `json:"sex,omitempty"`
	Size                string  `json:"size,omitempty"`
	BirthDate           string  `json:"birthDate,omitempty"`
	ApproximateAge      float64 `json:"approximateAge,omitempty"`
	Weight              float64 `json:"weight,omitempty"`
	Description         string  `json:"description,omitempty"`
	PhotoURL            string  `json:"photoURL,omitempty"`
	AdditionalPhotosURL string  `json:"additionalPhotosURL,omitempty"`
	IsNeutered          *bool   `json:"isNeutered,omitempty"`
	Allergies           string  `json:"allergies,omitempty"`
	MedicalNotes        string  `json:"medicalNotes,omitempty"`
}

// PetCreate is the body for POST /api/UserPets
type PetCreate struct {
	UserID         int64    `json:"userId"`
	Name           string   `json:"name"`
	Species        string   `json:"species"` // Dog or Cat
	Breed          *string  `json:"breed,omitempty"`
	Color          *string  `json:"color,omitempty"`
	Sex            *string  `json:"sex,omitempty"`  // Male, Female, Unknown
	Size           *string  `json:"size,omitempty"` // Small, Medium, Large
	BirthDate      *string  `json:"birthDate,omitempty"`
	ApproximateAge *float64 `json:"approximateAge,omitempty"`
	Weight         *float64 `json:"weight,omitempty"`
	Description    *string  `json:"description,omitempty"`
	IsNeutered     *bool    `json:"isNeutered,omitempty"`
	Allergies      *string  `json:"allergies,omitempty"`
	MedicalNotes   *string  `json:"medicalNotes,omitempty"`
}

// PetUpdate is the partial-update body for PUT /api/UserPets/{id}
type PetUpdate struct {
	Name           *string  `json:"name,omitempty"`
	Species        *string  `json:"species,omitempty"`
	Breed          *string  `json:"breed,omitempty"`
	Color          *string  `json:"color,omitempty"`
	Sex            *string  `json:"sex,omitempty"`
	Size           *string  `json:"size,omitempty"`
	BirthDate      *string  `json:"birthDate,omitempty"`
	ApproximateAge *float64 `json:"approximateAge,omitempty"`
	Weight         *float64 `json:"weight,omitempty"`
	Description    *string  `json:"description,omitempty"`
	IsNeutered     *bool    `json:"isNeutered,omitempty"`
	Allergies      *string  `json:"allergies,omitempty"`
	MedicalNotes   *string  `json:"medicalNotes,omitempty"`
}

func (p *PetUpdate) normalize() {
	p.Name = normalized(p.Name)
	p.Species = normalized(p.Species)
	p.Breed = normalized(p.Breed)
	p.Color = normalized(p.Color)
	p.Sex = normalized(p.Sex)
	p.Size = normalized(p.Size)
	p.BirthDate = normalized(p.BirthDate)
	p.Description = normalized(p.Description)
	p.Allergies = normalized(p.Allergies)
	p.MedicalNotes = normalized(p.MedicalNotes)
}

// AppointmentType enumerates the remote appointmentType values
type AppointmentType string

const (
	TypeCheckup      AppointmentType = "Checkup"
	TypeVaccination  AppointmentType = "Vaccination"
	TypeSurgery      AppointmentType = "Surgery"
	TypeGrooming     AppointmentType = "Grooming"
	TypeConsultation AppointmentType = "Consultation"
	TypeOther        AppointmentType = "Other"
)

// AppointmentTypes lists all valid appointment types in form order
func AppointmentTypes() []AppointmentType {
	return []AppointmentType{
		TypeCheckup, TypeVaccination, TypeSurgery,
		TypeGrooming, TypeConsultation, TypeOther,
	}
}

// Valid reports whether the value is one of the remote enum members
func (t AppointmentType) Valid() bool {
	switch t {
	case TypeCheckup, TypeVaccination, TypeSurgery, TypeGrooming, TypeConsultation, TypeOther:
		return true
	}
	return false
}

// AppointmentStatus enumerates the remote appointmentStatus values
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// Valid reports whether the value is one of the remote enum members
func (s AppointmentStatus) Valid() bool {
	return s == StatusScheduled || s == StatusCancelled
}

// Appointment is the record returned by the VeterinaryAppointments endpoints
type Appointment struct {
	ID                int64             `json:"id"`
	PetID             int64             `json:"petId"`
	VeterinaryName    string            `json:"veterinaryName,omitempty"`
	AppointmentType   AppointmentType   `json:"appointmentType,omitempty"`
	AppointmentStatus AppointmentStatus `json:"appointmentStatus,omitempty"`
	AppointmentDate   string            `json:"appointmentDate"` // ISO-8601
	DurationInMinutes int               `json:"durationInMinutes,omitempty"`
	ReasonForVisit    string            `json:"reasonForVisit,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	Diagnosis         string            `json:"diagnosis,omitempty"`
	Treatment         string            `json:"treatment,omitempty"`
	Prescriptions     string            `json:"prescriptions,omitempty"`
	Cost              float64           `json:"cost,omitempty"`
	AddressText       string            `json:"addressText,omitempty"`
	ReminderSent      bool              `json:"reminderSent"`
}

// AppointmentCreate is the body for POST /api/VeterinaryAppointments
type AppointmentCreate struct {
	PetID             int64             `json:"petId"`
	VeterinaryName    *string           `json:"veterinaryName,omitempty"`
	AppointmentType   AppointmentType   `json:"appointmentType"`
	AppointmentStatus AppointmentStatus `json:"appointmentStatus"`
	AppointmentDate   string            `json:"appointmentDate"`
	DurationInMinutes *int              `json:"durationInMinutes,omitempty"`
	ReasonForVisit    string            `json:"reasonForVisit"`
	Notes             *string           `json:"notes,omitempty"`
	Diagnosis         *string           `json:"diagnosis,omitempty"`
	Treatment         *string           `json:"treatment,omitempty"`
	Prescriptions     *string           `json:"prescriptions,omitempty"`
	Cost              *float64          `json:"cost,omitempty"`
	AddressText       *string           `json:"addressText,omitempty"`
}

// AppointmentUpdate is the partial-update body for PUT /api/VeterinaryAppointments/{id}
type AppointmentUpdate struct {
	VeterinaryName    *string            `json:"veterinaryName,omitempty"`
	AppointmentType   *AppointmentType   `json:"appointmentType,omitempty"`
	AppointmentStatus *AppointmentStatus `json:"appointmentStatus,omitempty"`
	AppointmentDate   *string            `json:"appointmentDate,omitempty"`
	DurationInMinutes *int               `json:"durationInMinutes,omitempty"`
	ReasonForVisit    *string            `json:"reasonForVisit,omitempty"`
	Notes             *string            `json:"notes,omitempty"`
	Diagnosis         *string            `json:"diagnosis,omitempty"`
	Treatment         *string            `json:"treatment,omitempty"`
	Prescriptions     *string            `json:"prescriptions,omitempty"`
	Cost              *float64           `json:"cost,omitempty"`
	AddressText       *string            `json:"addressText,omitempty"`
}

func (a *AppointmentUpdate) normalize() {
	a.VeterinaryName = normalized(a.VeterinaryName)
	a.AppointmentDate = normalized(a.AppointmentDate)
	a.ReasonForVisit = normalized(a.ReasonForVisit)
	a.Notes = normalized(a.Notes)
	a.Diagnosis = normalized(a.Diagnosis)
	a.Treatment = normalized(a.Treatment)
	a.Prescriptions = normalized(a.Prescriptions)
	a.AddressText = normalized(a.AddressText)
}

// normalized drops explicitly-cleared string fields: the API treats empty
// strings as "unset", so they are omitted from partial updates entirely.
func normalized(p *string) *string {
	if p != nil && strings.TrimSpace(*p) == "" {
		return nil
	}
	return p
}

// String returns a pointer to v, for building optional request fields
func String(v string) *string { return &v }

// Int returns a pointer to v, for building optional request fields
func Int(v int) *int { return &v }

// Float returns a pointer to v, for building optional request fields
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v, for building optional request fields
func Bool(v bool) *bool { return &v }
