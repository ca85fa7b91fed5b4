package money_test

import (
	"fmt"
	"slices"

	"github.com/govalues/decimal"

	"github.com/ledgerkit/money"
)

func TaxAmount(priceAfterTax money.Money, taxRate decimal.Decimal) (money.Money, money.Money, error) {
	// Price
	one := taxRate.One()
	taxRate, err := taxRate.Add(one)
	if err != nil {
		return money.Money{}, money.Money{}, err
	}

	priceBeforeTax, err := priceAfterTax.QuoDec(taxRate)
	if err != nil {
		return money.Money{}, money.Money{}, err
	}
	priceBeforeTax = priceBeforeTax.RoundToCurr()

	// Tax Amount
	taxAmount, err := priceAfterTax.Sub(priceBeforeTax)
	if err != nil {
		return money.Money{}, money.Money{}, err
	}

	return priceBeforeTax, taxAmount, nil
}

// In this example, the sales tax amount is calculated for a product with
// a given price after tax, using a specified tax rate.
func Example_taxCalculation() {
	priceAfterTax := money.MustParseAmount("USD", "10")
	vatRate := decimal.MustParse("0.065")

	priceBeforeTax, vatAmount, err := TaxAmount(priceAfterTax, vatRate)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Price (before tax) = %v\n", priceBeforeTax)
	fmt.Printf("VAT %-6k         = %v\n", vatRate, vatAmount)
	fmt.Printf("Price (after tax)  = %v\n", priceAfterTax)

	// Output:
	// Price (before tax) = USD 9.39
	// VAT 6.5%           = USD 0.61
	// Price (after tax)  = USD 10.00
}

// In this example, a bill is shared between guests and every share is
// printed the way a receipt in Germany would show it.
func Example_billSplit() {
	bill := money.MustParseAmount("EUR", "100")

	shares, err := bill.Split(3)
	if err != nil {
		panic(err)
	}
	for i, s := range shares {
		text, err := s.TextLocale("C", "de-DE")
		if err != nil {
			panic(err)
		}
		fmt.Printf("Guest %d: %v\n", i+1, text)
	}
	// Output:
	// Guest 1: 33,34 €
	// Guest 2: 33,33 €
	// Guest 3: 33,33 €
}

func ExampleNew() {
	usd := money.MustParseCurr("USD")
	fmt.Println(money.New(usd, decimal.MustParse("19.9")))
	// Output: USD 19.90 <nil>
}

func ExampleParseAmount() {
	fmt.Println(money.ParseAmount("USD", "1.5"))
	fmt.Println(money.ParseAmount("JPY", "1000"))
	fmt.Println(money.ParseAmount("OMR", "0.1234"))
	// Output:
	// USD 1.50 <nil>
	// JPY 1000 <nil>
	// OMR 0.1234 <nil>
}

func ExampleNewFromMinorUnits() {
	fmt.Println(money.NewFromMinorUnits("USD", 1999))
	fmt.Println(money.NewFromMinorUnits("JPY", 1999))
	// Output:
	// USD 19.99 <nil>
	// JPY 1999 <nil>
}

func ExampleParse() {
	fmt.Println(money.Parse("$1,234.56", "en-US"))
	fmt.Println(money.Parse("-1.234,56 €", "de-DE"))
	fmt.Println(money.Parse("($5.00)", "en-US"))
	// Output:
	// USD 1234.56 <nil>
	// EUR -1234.56 <nil>
	// USD -5.00 <nil>
}

func ExampleMoney_MinorUnits() {
	a := money.MustParseAmount("USD", "19.99")
	b := money.MustParseAmount("JPY", "1000")
	fmt.Println(a.MinorUnits())
	fmt.Println(b.MinorUnits())
	// Output:
	// 1999 true
	// 1000 true
}

func ExampleMoney_Add() {
	a := money.MustParseAmount("USD", "1")
	b := money.MustParseAmount("USD", "0.015")
	c := money.MustParseAmount("EUR", "1")
	fmt.Println(a.Add(b))
	fmt.Println(a.Add(c))
	// Output:
	// USD 1.015 <nil>
	// XXX 0 computing [USD 1.00 + EUR 1.00]: currency mismatch
}

func ExampleMoney_Rem() {
	a := money.MustParseAmount("USD", "10")
	b := money.MustParseAmount("USD", "3")
	fmt.Println(a.Rem(b))
	fmt.Println(a.Neg().Rem(b))
	// Output:
	// USD 1.00 <nil>
	// USD -1.00 <nil>
}

func ExampleMoney_ChangeCurrency() {
	a := money.MustParseAmount("USD", "10")
	eur := money.MustParseCurr("EUR")
	b, err := a.ChangeCurrency(eur, decimal.MustParse("0.9123"))
	if err != nil {
		panic(err)
	}
	fmt.Println(b)
	fmt.Println(b.RoundToCurr())
	// Output:
	// EUR 9.123000
	// EUR 9.12
}

func ExampleMoney_Split() {
	a := money.MustParseAmount("USD", "10")
	fmt.Println(a.Split(3))
	fmt.Println(a.Split(0))
	// Output:
	// [USD 3.34 USD 3.33 USD 3.33] <nil>
	// [] splitting USD 10.00 into 0 parts: invalid argument: number of parts must be positive
}

func ExampleMoney_Round() {
	a := money.MustParseAmount("USD", "2.345")
	fmt.Println(a.Round(2, money.HalfEven))
	fmt.Println(a.Round(2, money.HalfAwayFromZero))
	fmt.Println(a.Round(0, money.TowardPositive))
	fmt.Println(a.RoundToCurr())
	// Output:
	// USD 2.34
	// USD 2.35
	// USD 3.00
	// USD 2.34
}

func ExampleMoney_Cmp() {
	a := money.MustParseAmount("USD", "19.99")
	b := money.MustParseAmount("USD", "20")
	c := money.MustParseAmount("JPY", "1")
	fmt.Println(a.Cmp(b))
	fmt.Println(a.Cmp(c))
	fmt.Println(b.Equal(money.MustParseAmount("USD", "20.000")))
	// Output:
	// -1
	// 1
	// true
}

func ExampleCompare() {
	amounts := []money.Money{
		money.MustParseAmount("USD", "5"),
		money.MustParseAmount("JPY", "100"),
		money.MustParseAmount("USD", "-1"),
	}
	slices.SortFunc(amounts, money.Compare)
	fmt.Println(amounts)
	// Output: [JPY 100 USD -1.00 USD 5.00]
}

func ExampleMoney_TextLocale() {
	a := money.MustParseAmount("USD", "1234567.891")
	b := money.MustParseAmount("EUR", "-1234.56")
	c := money.MustParseAmount("INR", "12345678")
	fmt.Println(a.TextLocale("C", "en-US"))
	fmt.Println(a.TextLocale("L", "en-US"))
	fmt.Println(a.TextLocale("#,##0.0", "en-US"))
	fmt.Println(b.TextLocale("C", "de-DE"))
	fmt.Println(c.TextLocale("N0", "en-IN"))
	// Output:
	// $1,234,567.89 <nil>
	// 1,234,567.89 USD <nil>
	// $1,234,567.9 <nil>
	// -1.234,56 € <nil>
	// 1,23,45,678 <nil>
}

func ExampleMoney_Format() {
	a := money.MustParseAmount("USD", "19.99")
	fmt.Printf("%v\n", a)
	fmt.Printf("%q\n", a)
	fmt.Printf("%d\n", a)
	fmt.Printf("[%12v]\n", a)
	fmt.Printf("[%-12v]\n", a)
	fmt.Printf("%x\n", a)
	// Output:
	// USD 19.99
	// "USD 19.99"
	// 1999
	// [   USD 19.99]
	// [USD 19.99   ]
	// %!x(money.Money=USD 19.99)
}

func ExampleMoney_Int64() {
	a := money.MustParseAmount("USD", "-19.99")
	fmt.Println(a.Int64())
	fmt.Println(a.Uint8())
	// Output:
	// -19 true
	// 0 false
}

func ExampleParseCurr() {
	fmt.Println(money.ParseCurr("usd"))
	fmt.Println(money.ParseCurr("392"))
	fmt.Println(money.ParseCurr("QQQ"))
	// Output:
	// US Dollar (USD) <nil>
	// Yen (JPY) <nil>
	// No Currency (XXX) unknown currency: "QQQ"
}

func ExampleCurrencyForLocale() {
	fmt.Println(money.CurrencyForLocale("de-CH"))
	fmt.Println(money.CurrencyForLocale("ja_JP.UTF-8"))
	fmt.Println(money.CurrencyForLocale("C"))
	// Output:
	// Swiss Franc (CHF) <nil>
	// Yen (JPY) <nil>
	// No Currency (XXX) <nil>
}

func ExampleNewRegistry() {
	src := money.SourceFunc(func() ([]money.CurrencyRecord, error) {
		return []money.CurrencyRecord{
			{Code: "XBT", Num: 1, Name: "Bitcoin", Symbol: "₿", MinorUnits: 8},
		}, nil
	})
	r := money.NewRegistry(src)
	if err := r.Build(); err != nil {
		panic(err)
	}
	fmt.Println(r.ByCode("xbt"), r.ByCode("xbt").MinorUnits())
	fmt.Println(r.ByCode("USD"))
	fmt.Println(r.Currencies())
	// Output:
	// Bitcoin (XBT) 8
	// No Currency (XXX)
	// [Bitcoin (XBT) No Currency (XXX)]
}
