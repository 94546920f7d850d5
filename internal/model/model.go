package model

import "time"

// Wire types for the CareOps REST backend. Field names and casing follow the
// backend's JSON; the client never transforms payloads beyond decoding.

type User struct {
	ID              int       `json:"id"`
	Email           string    `json:"email"`
	FullName        string    `json:"full_name"`
	PhoneNumber     string    `json:"phone_number,omitempty"`
	IsPhoneVerified bool      `json:"is_phone_verified"`
	CreatedAt       time.Time `json:"created_at"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Workspace struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address,omitempty"`
	Timezone     string    `json:"timezone"`
	ContactEmail string    `json:"contact_email"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type Contact struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	LastContacted *time.Time `json:"last_contacted,omitempty"`
}

// Booking statuses as the backend reports them.
const (
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingNoShow    = "no_show"
	BookingCancelled = "cancelled"
)

type Booking struct {
	ID              int       `json:"id"`
	BookingType     string    `json:"booking_type"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location,omitempty"`
	Status          string    `json:"status"`
	Contact         Contact   `json:"contact"`
	CreatedAt       time.Time `json:"created_at"`
}

type Message struct {
	ID         int       `json:"id"`
	SenderType string    `json:"sender_type"`
	SenderName string    `json:"sender_name"`
	Content    string    `json:"content"`
	Channel    string    `json:"channel"`
	CreatedAt  time.Time `json:"created_at"`
}

type Conversation struct {
	ID        int       `json:"id"`
	Contact   Contact   `json:"contact"`
	IsOpen    bool      `json:"is_open"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DashboardStats struct {
	TodayBookings     int     `json:"today_bookings"`
	UpcomingBookings  int     `json:"upcoming_bookings"`
	NewInquiries      int     `json:"new_inquiries"`
	PendingForms      int     `json:"pending_forms"`
	LowInventoryCount int     `json:"low_inventory_count"`
	TotalRevenue      float64 `json:"total_revenue"`
}

// DashboardAlert rows arrive as loosely-shaped dicts; only the message is
// guaranteed, so keep the rest optional.
type DashboardAlert struct {
	Type    string `json:"type,omitempty"`
	Message string `json:"message"`
}

type DashboardSnapshot struct {
	Stats               DashboardStats   `json:"stats"`
	Alerts              []DashboardAlert `json:"alerts"`
	RecentBookings      []Booking        `json:"recent_bookings"`
	RecentConversations []Conversation   `json:"recent_conversations,omitempty"`
}
