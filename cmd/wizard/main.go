package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zanaya/ZNY-BookingService/internal/config"
	"github.com/zanaya/ZNY-BookingService/internal/delivery/whatsapp"
	"github.com/zanaya/ZNY-BookingService/internal/domain"
	"github.com/zanaya/ZNY-BookingService/internal/infra/catalogfile"
	"github.com/zanaya/ZNY-BookingService/internal/integrations/bookingapi"
	"github.com/zanaya/ZNY-BookingService/internal/service/pricing"
	"github.com/zanaya/ZNY-BookingService/internal/service/validation"
	"github.com/zanaya/ZNY-BookingService/internal/service/wizard"
	"github.com/zanaya/ZNY-BookingService/pkg/logger"
)

const (
	deliveryWhatsApp = "whatsapp"
	deliveryAPI      = "api"
)

func main() {
	var (
		cfgPath  string
		delivery string
	)

	rootCmd := &cobra.Command{
		Use:   "zanaya-wizard",
		Short: "Interactive ZANAYA booking wizard",
		Long: "Walks through the booking steps (religion, kit items, services, personal info, review)\n" +
			"and submits the booking either through a WhatsApp deep link or the backend API.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(cfgPath, delivery)
		},
	}
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.toml", "path to config file")
	rootCmd.Flags().StringVarP(&delivery, "delivery", "d", deliveryWhatsApp, "delivery strategy: whatsapp or api")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "zanaya-wizard: %v\n", err)
		os.Exit(1)
	}
}

func runWizard(cfgPath, delivery string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// В интерактивном режиме логи не должны перебивать диалог
	log, err := logger.New(cfg.Logs.File, "error")
	if err != nil {
		return err
	}
	defer log.Close()

	catalog, err := catalogfile.Load(cfg.Catalog.File)
	if err != nil {
		return err
	}

	var (
		adapter   wizard.DeliveryAdapter
		opts      validation.Options
		waAdapter *whatsapp.Adapter
	)

	switch delivery {
	case deliveryWhatsApp:
		waAdapter = whatsapp.NewAdapter(cfg.WhatsApp.OperatorNumber, log)
		adapter = waAdapter
		opts = validation.Options{RequireEmail: false}
	case deliveryAPI:
		adapter = bookingapi.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.Timeout)*time.Second, log)
		opts = validation.Options{RequireEmail: true}
	default:
		return fmt.Errorf("unknown delivery strategy %q (want %q or %q)", delivery, deliveryWhatsApp, deliveryAPI)
	}

	w := &cli{
		svc:       wizard.NewService(catalog, adapter, opts, log),
		catalog:   catalog,
		scanner:   bufio.NewScanner(os.Stdin),
		waAdapter: waAdapter,
	}

	fmt.Println("ZANAYA - Respectful Last Rites Services")
	fmt.Println("24/7 Helpline: +91 8273441052")

	return w.run()
}

// cli интерактивная оболочка над wizard.Service
type cli struct {
	svc       *wizard.Service
	catalog   *domain.Catalog
	scanner   *bufio.Scanner
	waAdapter *whatsapp.Adapter
}

func (w *cli) run() error {
	for {
		switch w.svc.Draft().CurrentStep {
		case domain.StepReligion:
			if quit := w.stepReligion(); quit {
				return nil
			}
		case domain.StepKitItems:
			w.stepKitItems()
		case domain.StepServices:
			w.stepServices()
		case domain.StepPersonalInfo:
			w.stepPersonalInfo()
		case domain.StepReview:
			w.stepReview()
		case domain.StepConfirmation:
			w.stepConfirmation()
			return nil
		}
	}
}

func (w *cli) header() {
	draft := w.svc.Draft()
	fmt.Printf("\n-- Step %d of 5: %s --\n", int(draft.CurrentStep)+1, draft.CurrentStep)
}

func (w *cli) prompt(label string) string {
	fmt.Print(label)
	if !w.scanner.Scan() {
		return "q"
	}
	return strings.TrimSpace(w.scanner.Text())
}

func (w *cli) stepReligion() bool {
	w.header()
	draft := w.svc.Draft()

	for i, r := range w.catalog.Religions {
		mark := " "
		if draft.Religion != nil && draft.Religion.ID == r.ID {
			mark = "*"
		}
		fmt.Printf(" %s %d. %s - %s\n", mark, i+1, r.Name, r.Description)
	}

	input := w.prompt("Select religion number, [n]ext, [q]uit: ")
	switch input {
	case "q":
		return true
	case "n":
		if !w.svc.CanAdvance() {
			fmt.Println("Please select a religion first.")
			return false
		}
		w.svc.Advance()
	default:
		if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(w.catalog.Religions) {
			_ = w.svc.SetReligion(w.catalog.Religions[idx-1].ID)
		}
	}
	return false
}

func (w *cli) stepKitItems() {
	w.header()
	draft := w.svc.Draft()

	kit, ok := w.catalog.KitFor(draft.Religion.ID)
	if !ok {
		fmt.Println("No kit available for this religion.")
		w.svc.Advance()
		return
	}

	for i, item := range kit.Items {
		mark := "[ ]"
		if draft.HasKitItem(item.ID) {
			mark = "[x]"
		}
		required := ""
		if item.Required {
			required = " (required)"
		}
		fmt.Printf(" %s %d. %s - %s%d%s\n", mark, i+1, item.Name, domain.CurrencySymbol, item.Price, required)
	}
	fmt.Printf("Kit subtotal: %s%d\n", domain.CurrencySymbol, pricing.Calculate(draft).KitSubtotal)

	input := w.prompt("Toggle item number, [n]ext, [p]rev: ")
	switch input {
	case "n":
		w.svc.Advance()
	case "p":
		w.svc.Retreat()
	default:
		if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(kit.Items) {
			_ = w.svc.ToggleKitItem(kit.Items[idx-1].ID)
		}
	}
}

func (w *cli) stepServices() {
	w.header()
	draft := w.svc.Draft()

	services := w.catalog.ServicesFor(draft.Religion.ID)
	for i, svc := range services {
		mark := "[ ]"
		if draft.HasService(svc.ID) {
			mark = "[x]"
		}
		duration := ""
		if svc.Duration != "" {
			duration = fmt.Sprintf(" (%s)", svc.Duration)
		}
		fmt.Printf(" %s %d. %s - %s%d%s\n", mark, i+1, svc.Name, domain.CurrencySymbol, svc.Price, duration)
	}
	fmt.Printf("Services subtotal: %s%d\n", domain.CurrencySymbol, pricing.Calculate(draft).ServicesSubtotal)

	input := w.prompt("Toggle service number, [n]ext, [p]rev: ")
	switch input {
	case "n":
		w.svc.Advance()
	case "p":
		w.svc.Retreat()
	default:
		if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(services) {
			_ = w.svc.ToggleService(services[idx-1].ID)
		}
	}
}

func (w *cli) stepPersonalInfo() {
	w.header()
	draft := w.svc.Draft()
	info := draft.PersonalInfo

	fmt.Printf(" Name:    %s\n Address: %s\n Phone:   %s\n Email:   %s\n",
		info.Name, info.Address, info.Phone, info.Email)

	input := w.prompt("[e]dit details, [n]ext, [p]rev: ")
	switch input {
	case "e":
		info.Name = w.prompt("Name: ")
		info.Address = w.prompt("Address: ")
		info.Phone = w.prompt("Phone: ")
		info.Email = w.prompt("Email (optional for WhatsApp): ")
		w.svc.SetPersonalInfo(info)
	case "n":
		if !w.svc.CanAdvance() {
			fmt.Println("Name, address and phone are required.")
			return
		}
		w.svc.Advance()
	case "p":
		w.svc.Retreat()
	}
}

func (w *cli) stepReview() {
	w.header()
	draft := w.svc.Draft()
	quote := pricing.Calculate(draft)
	cur := domain.CurrencySymbol

	fmt.Printf("Religion: %s\n", draft.Religion.Name)
	fmt.Println("Kit items:")
	for _, item := range draft.SelectedKitItems {
		required := ""
		if item.Required {
			required = " (required)"
		}
		fmt.Printf("  - %s - %s%d%s\n", item.Name, cur, item.Price, required)
	}
	if len(draft.SelectedServices) > 0 {
		fmt.Println("Services:")
		for _, svc := range draft.SelectedServices {
			fmt.Printf("  - %s - %s%d\n", svc.Name, cur, svc.Price)
		}
	}
	fmt.Printf("Kit subtotal:      %s%d\n", cur, quote.KitSubtotal)
	fmt.Printf("Services subtotal: %s%d\n", cur, quote.ServicesSubtotal)
	fmt.Printf("Grand total:       %s%d\n", cur, quote.GrandTotal)
	fmt.Printf("Contact: %s, %s, %s\n", draft.PersonalInfo.Name, draft.PersonalInfo.Phone, draft.PersonalInfo.Address)

	input := w.prompt("[s]ubmit, [p]rev: ")
	switch input {
	case "s":
		w.submit()
	case "p":
		w.svc.Retreat()
	}
}

func (w *cli) submit() {
	fmt.Println("Submitting...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := w.svc.Submit(ctx); err != nil {
		fmt.Println(submitErrorMessage(err))
		return
	}

	if w.waAdapter != nil {
		fmt.Println("WhatsApp link:", w.waAdapter.Link(w.svc.Draft()))
	}
}

func (w *cli) stepConfirmation() {
	fmt.Println("\nBooking submitted successfully. You will be contacted shortly.")
	fmt.Println("Thank you for trusting ZANAYA in this difficult time.")
}

// submitErrorMessage переводит исход отправки в сообщение пользователю
func submitErrorMessage(err error) string {
	var rejected *bookingapi.RejectedError
	switch {
	case errors.As(err, &rejected):
		return rejected.Message
	case errors.Is(err, bookingapi.ErrNetwork):
		return "Cannot connect to server. Please ensure the backend is running and try again."
	case errors.Is(err, bookingapi.ErrMalformedResponse):
		return "Invalid response from server. Please try again."
	default:
		return validation.Message(err)
	}
}
