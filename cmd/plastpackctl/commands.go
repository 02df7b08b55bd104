package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"plastpack/internal/domain/entity"
)

// Supported commands:
// - login/logout/status: admin session management
// - categories/types/products/images: catalog reads and admin CRUD

func dispatch(ctx context.Context, params runParams, args []string) error {
	if len(args) == 0 {
		printUsage()

		return errors.New("missing command")
	}

	switch args[0] {
	case "login":
		return runLogin(ctx, params, args[1:])
	case "logout":
		params.Navigator.Navigate("/admin")

		if err := params.Session.Logout(); err != nil {
			return err
		}

		return printJSON(params.Session.Status())
	case "status":
		return printJSON(params.Session.Status())
	case "categories":
		return runCategories(ctx, params, args[1:])
	case "types":
		return runTypes(ctx, params, args[1:])
	case "products":
		return runProducts(ctx, params, args[1:])
	case "images":
		return runImages(ctx, params, args[1:])
	case "help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown command %q", args[0])
	}
}

func runLogin(ctx context.Context, params runParams, args []string) error {
	cmd := flag.NewFlagSet("login", flag.ExitOnError)
	username := cmd.String("username", "", "Admin username")
	password := cmd.String("password", "", "Admin password")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "parse login flags")
	}

	if err := params.Session.Login(ctx, *username, *password); err != nil {
		return err
	}

	return printJSON(params.Session.Status())
}

func runCategories(ctx context.Context, params runParams, args []string) error {
	if len(args) == 0 {
		return errors.New("categories: expected list|get|create|update|delete")
	}

	switch args[0] {
	case "list":
		params.Navigator.Navigate("/catalog")

		categories, err := params.Public.ListCategories(ctx)
		if err != nil {
			return err
		}

		return printJSON(categories)
	case "get":
		cmd := flag.NewFlagSet("categories get", flag.ExitOnError)
		id := cmd.Int64("id", 0, "Category id")
		if err := cmd.Parse(args[1:]); err != nil {
			return errors.Wrap(err, "parse flags")
		}
		params.Navigator.Navigate("/catalog")

		category, err := params.Public.GetCategory(ctx, *id)
		if err != nil {
			return err
		}

		return printJSON(category)
	case "create":
		cmd := flag.NewFlagSet("categories create", flag.ExitOnError)
		name := cmd.String("name", "", "Category name")
		if err := cmd.Parse(args[1:]); err != nil {
			return errors.Wrap(err, "parse flags")
		}
		params.Navigator.Navigate("/admin/categories")

		category, err := params.Admin.CreateCategory(ctx, entity.CategoryInput{CategoryName: *name})
		if err != nil {
			return err
		}

		return printJSON(category)
	case "update":
		cmd := flag.NewFlagSet("categories update", flag.ExitOnError)
		id := cmd.Int64("id", 0, "Category id")
		name := cmd.String("name", "", "Category name")
		if err := cmd.Parse(args[1:]); err != nil {
			return errors.Wrap(err, "parse flags")
		}
		params.Navigator.Navigate("/admin/categories")

		category, err := params.Admin.UpdateCategory(ctx, *id, entity.CategoryInput{CategoryName: *name})
		if err != nil {
			return err
		}

		return printJSON(category)
	case "delete":
		cmd := flag.NewFlagSet("categories delete", flag.ExitOnError)
		id := cmd.Int64("id", 0, "Category id")
		if err := cmd.Parse(args[1:]); err != nil {
			return errors.Wrap(err, "parse flags")
		}
		params.Navigator.Navigate("/admin/categories")

		return params.Admin.DeleteCategory(ctx, *id)
	default:
		return errors.Errorf("categories: unknown subcommand %q", args[0])
	}
}

func runTypes(ctx context.Context, params runParams, args []string) error {
	if len(args) == 0 {
		return errors.New("types: expected list|get|create|update|delete")
	}

	switch args[0] {
	case "list":
		cmd := flag.NewFlagSet("types list", flag.ExitOnError)
		category := cmd.Int64("category", 0, "Filter by category id (0 for all)")
		if err := cmd.Parse(args[1:]); err != nil {
			return errors.Wrap(err, "parse flags")
		}
		params.Navigator.Navigate("/catalog")

		types, err := params.Public.ListTypes(ctx, *category)
		if err != nil {
			return err
		}

		return printJSON(types)
	case "get":
		cmd := flag.NewFlagSet("types get", flag.ExitOnError)
		id := cmd.Int64("id", 0, "Type id")
		if err := cmd.Parse(args[1:]); err != nil {
			return errors.Wrap(err, "parse flags")
		}
		params.Navigator.Navigate("/catalog")

		productType, err := params.Public.GetType(ctx, *id)
		if err != nil {
			return err
		}

		return printJSON(productType)
	case "create":
		cmd := flag.NewFlagSet("types create", flag.ExitOnError)
		name := cmd.String("name", "", "Type name")
		category := cmd.Int64("category", 0, "Parent category id")
		if err := cmd.Parse(args[1:]); err != nil {
			return errors.Wrap(err, "parse flags")
		}
		params.Navigator.Navigate("/admin/types")

		productType, err := params.Admin.CreateType(ctx, entity.TypeInput{TypeName: *name, CategoryID: *category})
		if err != nil {
			return err
		}

		return printJSON(productType)
	case "update":
		cmd := flag.NewFlagSet("types update", flag.ExitOnError)
		id := cmd.Int64("id", 0, "Type id")
		name := cmd.String("name", "", "Type name")
		category := cmd.Int64("category", 0, "Parent category id")
		if err := cmd.Parse(args[1:]); err != nil {
			return errors.Wrap(err, "parse flags")
		}
		params.Navigator.Navigate("/admin/types")

		productType, err := params.Admin.UpdateType(ctx, *id, entity.TypeInput{TypeName: *name, CategoryID: *category})
		if err != nil {
			return err
		}

		return printJSON(productType)
	case "delete":
		cmd := flag.NewFlagSet("types delete", flag.ExitOnError)
		id := cmd.Int64("id", 0, "Type id")
		if err := cmd.Parse(args[1:]); err != nil {
			return errors.Wrap(err, "parse flags")
		}
		params.Navigator.Navigate("/admin/types")

		return params.Admin.DeleteType(ctx, *id)
	default:
		return errors.Errorf("types: unknown subcommand %q", args[0])
	}
}

func printJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return errors.Wrap(encoder.Encode(value), "encode output")
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: plastpackctl <command> [flags]

Session:
  login -username <u> -password <p>   Authenticate and store the admin token
  logout                              Discard the stored token
  status                              Show the local session state

Catalog:
  categories list|get|create|update|delete
  types      list|get|create|update|delete
  products   list|page|get|search|related|create|update|patch|delete
  images     upload|delete

Public reads need no credentials; everything else requires a prior login.`)
}
