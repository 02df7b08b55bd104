package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"plastpack/internal/domain/entity"
	"plastpack/internal/util"
)

func runProducts(ctx context.Context, params runParams, args []string) error {
	if len(args) == 0 {
		return errors.New("products: expected list|page|get|search|related|create|update|patch|delete")
	}

	switch args[0] {
	case "list":
		filter, err := parseProductFilter("products list", args[1:])
		if err != nil {
			return err
		}
		params.Navigator.Navigate("/catalog")

		products, err := params.Public.ListProducts(ctx, *filter)
		if err != nil {
			return err
		}

		return printJSON(products)
	case "page":
		filter, err := parseProductFilter("products page", args[1:])
		if err != nil {
			return err
		}
		params.Navigator.Navigate("/catalog")

		page, err := params.Public.ListProductsPage(ctx, *filter)
		if err != nil {
			return err
		}

		return printJSON(page)
	case "get":
		cmd := flag.NewFlagSet("products get", flag.ExitOnError)
		id := cmd.Int64("id", 0, "Product id")
		if err := cmd.Parse(args[1:]); err != nil {
			return errors.Wrap(err, "parse flags")
		}
		params.Navigator.Navigate("/catalog")

		product, err := params.Public.GetProduct(ctx, *id)
		if err != nil {
			return err
		}

		return printJSON(product)
	case "search":
		cmd := flag.NewFlagSet("products search", flag.ExitOnError)
		query := cmd.String("query", "", "Name substring to search for")
		if err := cmd.Parse(args[1:]); err != nil {
			return errors.Wrap(err, "parse flags")
		}
		params.Navigator.Navigate("/catalog")

		products, err := params.Public.SearchProducts(ctx, *query)
		if err != nil {
			return err
		}

		return printJSON(products)
	case "related":
		cmd := flag.NewFlagSet("products related", flag.ExitOnError)
		typeID := cmd.Int64("type", 0, "Type id the products share")
		exclude := cmd.Int64("exclude", 0, "Product id to leave out")
		if err := cmd.Parse(args[1:]); err != nil {
			return errors.Wrap(err, "parse flags")
		}
		params.Navigator.Navigate("/catalog")

		products, err := params.Public.RelatedProducts(ctx, *typeID, *exclude)
		if err != nil {
			return err
		}

		return printJSON(products)
	case "create", "update":
		return runProductWrite(ctx, params, args[0], args[1:])
	case "patch":
		return runProductPatch(ctx, params, args[1:])
	case "delete":
		cmd := flag.NewFlagSet("products delete", flag.ExitOnError)
		id := cmd.Int64("id", 0, "Product id")
		if err := cmd.Parse(args[1:]); err != nil {
			return errors.Wrap(err, "parse flags")
		}
		params.Navigator.Navigate("/admin/products")

		return params.Admin.DeleteProduct(ctx, *id)
	default:
		return errors.Errorf("products: unknown subcommand %q", args[0])
	}
}

func parseProductFilter(name string, args []string) (*entity.ProductFilter, error) {
	cmd := flag.NewFlagSet(name, flag.ExitOnError)
	filter := &entity.ProductFilter{}
	cmd.Int64Var(&filter.Category, "category", 0, "Filter by category id")
	cmd.Int64Var(&filter.Type, "type", 0, "Filter by type id")
	cmd.Int64Var(&filter.Exclude, "exclude", 0, "Exclude one product id")
	cmd.StringVar(&filter.Name, "name", "", "Name substring")
	cmd.StringVar(&filter.Material, "material", "", "Material substring")
	cmd.StringVar(&filter.Compound, "compound", "", "Compound substring")
	cmd.StringVar(&filter.Color, "color", "", "Exact color, e.g. #FFFFFF")
	cmd.IntVar(&filter.ThroatDiameter, "throat-diameter", 0, "Exact throat diameter (mm)")
	cmd.IntVar(&filter.VolumeMin, "volume-min", 0, "Minimum package volume")
	cmd.IntVar(&filter.VolumeMax, "volume-max", 0, "Maximum package volume")
	cmd.IntVar(&filter.WeightMin, "weight-min", 0, "Minimum weight (g)")
	cmd.IntVar(&filter.WeightMax, "weight-max", 0, "Maximum weight (g)")
	cmd.StringVar(&filter.Sort, "sort", "", "Sort field")
	cmd.StringVar(&filter.Order, "order", "", "Sort order (asc/desc)")
	cmd.IntVar(&filter.Page, "page", 0, "Page number")
	cmd.IntVar(&filter.PageSize, "page-size", 0, "Page size")
	if err := cmd.Parse(args); err != nil {
		return nil, errors.Wrapf(err, "parse %s flags", name)
	}

	return filter, nil
}

func runProductWrite(ctx context.Context, params runParams, verb string, args []string) error {
	cmd := flag.NewFlagSet("products "+verb, flag.ExitOnError)
	id := cmd.Int64("id", 0, "Product id (update only)")
	input := entity.ProductInput{}
	cmd.StringVar(&input.ProductName, "name", "", "Product name")
	cmd.Int64Var(&input.TypeID, "type", 0, "Type id")
	cmd.StringVar(&input.Description, "description", "", "Description")
	cmd.StringVar(&input.ArticleNumber, "article", "", "Article number")
	cmd.IntVar(&input.Weight, "weight", 0, "Weight (g)")
	cmd.IntVar(&input.PackageVolume, "volume", 0, "Package volume (l)")
	cmd.IntVar(&input.ThroatDiameter, "throat-diameter", 0, "Throat diameter (mm)")
	cmd.StringVar(&input.ThroatStandard, "throat-standard", "", "Throat standard")
	cmd.StringVar(&input.Dimensions, "dimensions", "", "Dimensions")
	cmd.StringVar(&input.Compound, "compound", "", "Compound")
	cmd.StringVar(&input.Material, "material", "", "Material")
	cmd.StringVar(&input.Package, "package", "", "Package")
	cmd.StringVar(&input.Application, "application", "", "Application")
	cmd.BoolVar(&input.InStock, "in-stock", true, "In stock")
	colors := cmd.String("colors", "", "Comma-separated hex colors, e.g. #FFFFFF,#1A2B3C")
	imagePath := cmd.String("image", "", "Path to an image file to attach")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrapf(err, "parse products %s flags", verb)
	}

	if *colors != "" {
		for _, color := range strings.Split(*colors, ",") {
			input.Colors = append(input.Colors, strings.TrimSpace(color))
		}
	}

	if *imagePath != "" {
		file, err := os.Open(*imagePath)
		if err != nil {
			return errors.Wrap(err, "open image file")
		}
		defer file.Close()
		input.Image = &entity.ImageFile{Name: filepath.Base(*imagePath), Reader: file}
	}

	params.Navigator.Navigate("/admin/products")

	var (
		product *entity.Product
		err     error
	)
	if verb == "create" {
		product, err = params.Admin.CreateProduct(ctx, input)
	} else {
		product, err = params.Admin.UpdateProduct(ctx, *id, input)
	}
	if err != nil {
		return err
	}

	return printJSON(product)
}

func runProductPatch(ctx context.Context, params runParams, args []string) error {
	cmd := flag.NewFlagSet("products patch", flag.ExitOnError)
	id := cmd.Int64("id", 0, "Product id")
	name := cmd.String("name", "", "Product name")
	description := cmd.String("description", "", "Description")
	inStock := cmd.Bool("in-stock", true, "In stock")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "parse products patch flags")
	}

	// Only the flags the operator actually set go into the patch.
	patch := entity.ProductPatch{}
	cmd.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.ProductName = name
		case "description":
			patch.Description = description
		case "in-stock":
			patch.InStock = inStock
		}
	})

	params.Navigator.Navigate("/admin/products")

	product, err := params.Admin.PatchProduct(ctx, *id, patch)
	if err != nil {
		return err
	}

	return printJSON(product)
}

func runImages(ctx context.Context, params runParams, args []string) error {
	if len(args) == 0 {
		return errors.New("images: expected upload|delete")
	}

	switch args[0] {
	case "upload":
		cmd := flag.NewFlagSet("images upload", flag.ExitOnError)
		productID := cmd.Int64("product", 0, "Product id")
		path := cmd.String("file", "", "Path to the image file")
		if err := cmd.Parse(args[1:]); err != nil {
			return errors.Wrap(err, "parse flags")
		}

		file, err := os.Open(*path)
		if err != nil {
			return errors.Wrap(err, "open image file")
		}
		defer file.Close()

		if info, err := file.Stat(); err == nil {
			params.Logger.Info("uploading image",
				slog.String("file", info.Name()),
				slog.String("size", util.FormatBytes(info.Size())),
			)
		}

		params.Navigator.Navigate("/admin/products")

		image, err := params.Admin.UploadProductImage(ctx, *productID, entity.ImageFile{
			Name:   filepath.Base(*path),
			Reader: file,
		})
		if err != nil {
			return err
		}

		return printJSON(image)
	case "delete":
		cmd := flag.NewFlagSet("images delete", flag.ExitOnError)
		id := cmd.Int64("id", 0, "Image id")
		if err := cmd.Parse(args[1:]); err != nil {
			return errors.Wrap(err, "parse flags")
		}

		params.Navigator.Navigate("/admin/products")

		return params.Admin.DeleteProductImage(ctx, *id)
	default:
		return errors.Errorf("images: unknown subcommand %q", args[0])
	}
}
