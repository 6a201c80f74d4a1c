// Консольный смоук-клиент сессионного слоя: проверяет доступность на
// дату и, при необходимости, создает запись через работающий сервис
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/config"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-AppointmentService/internal/session"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func main() {
	var (
		configPath   = flag.String("config", "config.toml", "путь к конфигурации")
		dateStr      = flag.String("date", "", "дата YYYY-MM-DD (по умолчанию завтра)")
		bookTime     = flag.String("book", "", "создать запись на время HH:MM")
		customerID   = flag.Int64("customer-id", 0, "ID клиента")
		customerName = flag.String("customer-name", "", "имя клиента")
		serviceID    = flag.Int64("service-id", 0, "ID услуги")
		serviceName  = flag.String("service-name", "", "название услуги")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	date := time.Now().AddDate(0, 0, 1)
	if *dateStr != "" {
		date, err = time.Parse(domain.DateFormat, *dateStr)
		if err != nil {
			fmt.Printf("Invalid date %q: %v\n", *dateStr, err)
			os.Exit(1)
		}
	}

	client := bookingapi.NewClient(
		cfg.BookingAPI.URL,
		time.Duration(cfg.BookingAPI.Timeout)*time.Second,
		log,
	)
	sess := session.New(client, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := sess.LoadCapacity(ctx); err != nil {
		fmt.Printf("Failed to load capacity: %v\n", err)
		os.Exit(1)
	}

	slots, err := sess.CheckAvailability(ctx, date)
	if err != nil {
		fmt.Printf("Failed to check availability: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Date: %s\n", date.Format(domain.DateFormat))
	fmt.Printf("Capacity: %d\n", sess.Capacity())
	fmt.Printf("Active bookings: %d\n", len(sess.Bookings()))
	fmt.Printf("Available slots: %v\n", slots)

	if *bookTime == "" {
		return
	}

	startTime, err := types.NewTimeStringFromString(*bookTime)
	if err != nil {
		fmt.Printf("Invalid time %q: %v\n", *bookTime, err)
		os.Exit(1)
	}

	booking, err := sess.CreateBooking(ctx, session.CreateBookingInput{
		CustomerID:   *customerID,
		ServiceID:    *serviceID,
		BookingDate:  date,
		StartTime:    startTime,
		CustomerName: *customerName,
		ServiceName:  *serviceName,
	})
	if err != nil {
		fmt.Printf("Failed to create booking: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Booking created: id=%d, tracking=%s, status=%s\n",
		booking.ID, booking.TrackingHash, booking.Status)

	for _, n := range sess.Notifications() {
		fmt.Printf("[%s] %s: %s\n", n.Severity, n.Title, n.Message)
	}
}
