package stubs

import (
	"slices"

	"storefront/internal/models"
)

var userData = models.UserProfile{
	Name:            "Sarah Miller",
	AvatarURL:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
	MonthlyEarnings: 1234.5,
	UnreadMessages: []models.Message{
		{ID: 1, Sender: "John Doe", Message: "Is the blue jacket still available?", Unread: true},
		{ID: 2, Sender: "Emma Wilson", Message: "Thanks, the order arrived today!", Unread: false},
		{ID: 3, Sender: "Liam Brown", Message: "Can you ship to Canada?", Unread: true},
	},
	SalesData: models.SalesSummary{
		ThisMonth: models.MonthStats{TotalSales: 152, UniqueCustomers: 87},
	},
	Chats: []models.ChatThread{
		{ID: 1, Name: "John Doe", LastMessage: "Is the blue jacket still available?", Unread: true},
		{ID: 2, Name: "Emma Wilson", LastMessage: "Thanks, the order arrived today!", Unread: false},
		{ID: 3, Name: "Liam Brown", LastMessage: "Can you ship to Canada?", Unread: true},
	},
}

var salesChart = []models.SalesPoint{
	{Month: "Jan", Sales: 400},
	{Month: "Feb", Sales: 300},
	{Month: "Mar", Sales: 600},
	{Month: "Apr", Sales: 800},
	{Month: "May", Sales: 500},
	{Month: "Jun", Sales: 900},
}

// UserData returns a copy of the mock profile with the sales trend attached.
func UserData() models.UserProfile {
	p := userData
	p.UnreadMessages = slices.Clone(userData.UnreadMessages)
	p.Chats = slices.Clone(userData.Chats)
	p.SalesData.Trend = SalesChart()
	return p
}

// SalesChart returns a copy of the monthly sales series.
func SalesChart() []models.SalesPoint {
	return slices.Clone(salesChart)
}
