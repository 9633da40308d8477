package console

import (
	"context"

	"github.com/oksasatya/go-store-registry/internal/application"
	"github.com/oksasatya/go-store-registry/pkg/validation"
)

func (c *Console) productMenu(ctx context.Context) {
	for ctx.Err() == nil {
		c.println("")
		c.println("Manage products:")
		c.println("1. Add product")
		c.println("2. Update product")
		c.println("3. Show all products")
		c.println("4. Show one product")
		c.println("5. Delete product")
		c.println("0. Back")

		choice := c.promptString("Choose an action (0-5)")
		if c.readErr != nil {
			return
		}
		switch choice {
		case "1":
			c.addProduct(ctx)
		case "2":
			c.updateProduct(ctx)
		case "3":
			c.listProducts(ctx)
		case "4":
			c.showProduct(ctx)
		case "5":
			c.deleteProduct(ctx)
		case "0":
			return
		default:
			c.println("Invalid choice. Try again.")
		}
	}
}

// promptProductFields gathers every product field except the name; malformed
// numeric or date input aborts the operation here, before any service call.
func (c *Console) promptProductFields(view *application.ProductView) bool {
	view.Description = c.promptString("Enter description")

	qty, err := c.promptInt("Enter quantity in stock")
	if err != nil {
		c.println("Invalid input: %v.", err)
		return false
	}
	view.QuantityInStock = qty

	price, err := c.promptFloat("Enter price")
	if err != nil {
		c.println("Invalid input: %v.", err)
		return false
	}
	view.Price = price

	produced, err := c.promptDate("Enter production date")
	if err != nil {
		c.println("Invalid input: %v.", err)
		return false
	}
	view.ProductionDate = produced

	view.CategoryName = c.promptString("Enter category name")
	view.ManufacturerName = c.promptString("Enter manufacturer name")
	return true
}

func (c *Console) addProduct(ctx context.Context) {
	view := application.ProductView{Name: c.promptString("Enter product name")}
	if !c.promptProductFields(&view) {
		return
	}
	if err := validation.Struct(view); err != nil {
		c.println("Invalid input: %v.", err)
		return
	}
	if c.products.CreateProduct(ctx, view) {
		c.println("Product added successfully!")
	} else {
		c.println("Could not add product; a product with that name may already exist.")
	}
}

func (c *Console) updateProduct(ctx context.Context) {
	name := c.promptString("Enter product name to find product for update")
	existing, err := c.products.GetOneProduct(ctx, name)
	if err != nil {
		c.println("Product with name %s not found.", name)
		return
	}

	c.println("Product found! Enter new details:")
	view := application.ProductView{
		ID:   existing.ID,
		Name: c.promptString("Enter product name"),
	}
	if !c.promptProductFields(&view) {
		return
	}
	if err := validation.Struct(view); err != nil {
		c.println("Invalid input: %v.", err)
		return
	}
	if c.products.UpdateProduct(ctx, view) {
		c.println("Product updated successfully!")
	} else {
		c.println("Error updating product.")
	}
}

func (c *Console) listProducts(ctx context.Context) {
	products, err := c.products.GetAllProducts(ctx)
	if err != nil || len(products) == 0 {
		c.println("Products not found.")
		return
	}
	for _, p := range products {
		c.println("Name: %s, Quantity: %d, Price: %.2f", p.Name, p.QuantityInStock, p.Price)
	}
}

func (c *Console) showProduct(ctx context.Context) {
	name := c.promptString("Enter product name to show product information")
	p, err := c.products.GetOneProduct(ctx, name)
	if err != nil {
		c.println("Product with name %s not found.", name)
		return
	}
	c.println("Name: %s", p.Name)
	c.println("Description: %s", p.Description)
	c.println("Category: %s", p.CategoryName)
	c.println("Manufacturer: %s", p.ManufacturerName)
	c.println("Quantity in stock: %d", p.QuantityInStock)
	c.println("Price: %.2f", p.Price)
}

func (c *Console) deleteProduct(ctx context.Context) {
	name := c.promptString("Enter name of the product to delete")
	if c.products.DeleteProduct(ctx, application.ProductView{Name: name}) {
		c.println("Product deleted successfully!")
	} else {
		c.println("Product with name %s not found.", name)
	}
}
