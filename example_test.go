package rowkit_test

import (
	"fmt"
	"log"

	"github.com/rowkit/rowkit"
	"github.com/rowkit/rowkit/record"
	"github.com/rowkit/rowkit/tabular"
)

func ExamplePivot() {
	rows, err := tabular.ParseString(
		"category,item,quantity\n" +
			"Fruit,Apple,10\n" +
			"Fruit,Banana,5\n" +
			"Vegetable,Carrot,7\n" +
			"Fruit,Apple,3\n")
	if err != nil {
		log.Fatal(err)
	}

	pivoted, err := rowkit.Pivot(rows, "category", "item", "quantity")
	if err != nil {
		log.Fatal(err)
	}

	for _, row := range pivoted {
		row.Range(func(field string, v record.Value) bool {
			fmt.Printf("%s=%s ", field, v.Text())
			return true
		})
		fmt.Println()
	}
	// Output:
	// category=Fruit Apple=13 Banana=5
	// category=Vegetable Carrot=7
}

func ExampleFilter() {
	rows, err := tabular.ParseString(
		"name,age\n" +
			"Alice,30\n" +
			"Bob,20\n" +
			"Carol,30\n")
	if err != nil {
		log.Fatal(err)
	}

	thirty, err := rowkit.Filter(rows, record.Criteria{"age": record.Float(30)})
	if err != nil {
		log.Fatal(err)
	}

	for _, row := range thirty {
		fmt.Println(row.Field("name").Text())
	}
	// Output:
	// Alice
	// Carol
}
