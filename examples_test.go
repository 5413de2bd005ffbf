package methodstruct_test

import (
	stderrors "errors"
	"fmt"

	"github.com/chriso345/methodstruct"
	"github.com/chriso345/methodstruct/errors"
)

func Example_readme() {
	point, err := methodstruct.New([]string{"x", "y"})
	if err != nil {
		panic(err)
	}

	adder := point.Extend("Adder", methodstruct.Methods{
		"call": func(self *methodstruct.Instance) (any, error) {
			x, _ := self.Get("x")
			y, _ := self.Get("y")
			return x.(int) + y.(int), nil
		},
	})

	positional, _ := adder.Call(1, 2)
	named, _ := adder.Call(methodstruct.Args{"x": 1, "y": 2})
	fmt.Println(positional, named)
	// Output: 3 3
}

func Example_method_name() {
	base, err := methodstruct.New([]string{"greeting"}, methodstruct.WithMethodName("run"))
	if err != nil {
		panic(err)
	}

	greeter := base.Extend("Greeter", methodstruct.Methods{
		"run": func(self *methodstruct.Instance) (any, error) {
			g, _ := self.Get("greeting")
			return fmt.Sprintf("%s, World!", g), nil
		},
	})

	out, _ := greeter.Invoke("run", "Hello")
	fmt.Println(out)

	_, err = greeter.Invoke("call", "Hello")
	fmt.Println(stderrors.Is(err, errors.ErrUndefinedMethod))
	// Output: Hello, World!
	// true
}

func Example_single_field_map() {
	base, _ := methodstruct.New([]string{"x"})
	echo := base.Extend("Echo", methodstruct.Methods{
		"call": func(self *methodstruct.Instance) (any, error) {
			return self.At(0), nil
		},
	})

	out, _ := echo.Call(methodstruct.Args{"things": true})
	fmt.Println(out)
	// Output: map[things:true]
}

func Example_equality() {
	pair, _ := methodstruct.New([]string{"a", "b"}, methodstruct.WithName("Pair"))
	other, _ := methodstruct.New([]string{"a", "b"}, methodstruct.WithName("Pair"))

	p1, _ := pair.New(1, 2)
	p2, _ := pair.New(1, 2)
	p3, _ := other.New(1, 2)

	fmt.Println(p1)
	fmt.Println(p1.Equal(p2), p1.HashCode() == p2.HashCode())
	fmt.Println(p1.Equal(p3))
	// Output: Pair(a: 1, b: 2)
	// true true
	// false
}

func Example_from_struct() {
	type Point struct {
		X int
		Y int `field:"ordinate"`
	}

	base, err := methodstruct.FromStruct(Point{})
	if err != nil {
		panic(err)
	}
	fmt.Println(base)

	p, _ := base.New(3, 4)
	var out Point
	if err := p.Decode(&out); err != nil {
		panic(err)
	}
	fmt.Printf("%+v\n", out)
	// Output: Point[x, ordinate] .call
	// {X:3 Y:4}
}
