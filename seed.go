package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/anamkhan-2/bzooo-webtechProject/models"
)

var sampleTickets = []models.Ticket{
	{Name: "Adult Ticket", Price: 24.99, Category: "Entry", Description: "Full day access for adults"},
	{Name: "Child Ticket", Price: 14.99, Category: "Entry", Description: "Children under 12 years"},
	{Name: "Family Ticket", Price: 64.99, Category: "Entry", Description: "2 Adults + 2 Children"},
	{Name: "VIP Ticket", Price: 99.99, Category: "Entry", Description: "VIP access with guide"},
	{Name: "Lion Ticket", Price: 9.99, Category: "Animal", Description: "See lions"},
	{Name: "Elephant Ticket", Price: 12.99, Category: "Animal", Description: "See elephants"},
	{Name: "Bird Show Ticket", Price: 7.99, Category: "Show", Description: "Bird show"},
	{Name: "Safari Ticket", Price: 29.99, Category: "Adventure", Description: "Safari tour"},
	{Name: "Aquarium Ticket", Price: 8.99, Category: "Aquatic", Description: "Visit Aquarium"},
}

// seedTickets inserts the demo catalog once; reruns are no-ops.
func seedTickets(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Ticket{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("✅ Tickets already seeded, skipping")
		return nil
	}

	tickets := append([]models.Ticket(nil), sampleTickets...)
	if err := db.Create(&tickets).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded %d demo tickets", len(tickets))
	return nil
}
