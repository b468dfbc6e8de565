// camctl-inspect is an interactive catalogue browser: families on the
// left, the selected family's operations in the middle, and the
// selected operation's codes, domains and record layouts on the right,
// all through the lens of one model view.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	fujicom "github.com/Scoduglas1999/Fujicom-sub001"
	"github.com/Scoduglas1999/Fujicom-sub001/pkg/catalog"
	"github.com/Scoduglas1999/Fujicom-sub001/pkg/records"
	"github.com/Scoduglas1999/Fujicom-sub001/pkg/views"
)

func main() {
	model := flag.String("model", string(fujicom.ModelReference), "model view to browse")
	flag.Parse()

	view, err := fujicom.ModelView(fujicom.Model(*model))
	if err != nil {
		log.Fatalf("unknown model %q: %v", *model, err)
	}

	app := tview.NewApplication()

	families := tview.NewList().ShowSecondaryText(false)
	families.SetBorder(true).SetTitle("Families")

	ops := tview.NewList()
	ops.SetBorder(true).SetTitle(fmt.Sprintf("Operations (%s)", view.Name()))

	detail := tview.NewTextView()
	detail.SetBorder(true).SetTitle("Detail")

	logText := tview.NewTextView()
	logText.SetMaxLines(10).SetBorder(true).SetTitle("Log")

	log.SetOutput(logText)

	detailColumn := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(detail, 0, 1, false)

	var resolveInput *tview.InputField

	for _, f := range catalog.Families() {
		families.AddItem(familyTitle(f), "", 0, func() {
			ops.Clear()
			for _, op := range catalog.FamilyOperations(f) {
				ops.AddItem(operationTitle(op), operationSubtitle(view, op), 0, func() {
					renderDetail(detail, view, op)
					if resolveInput != nil {
						detailColumn.RemoveItem(resolveInput)
						resolveInput = nil
					}
					d, ok := operationDomain(op)
					if !ok {
						app.SetFocus(detail)
						return
					}
					input := tview.NewInputField()
					input.SetLabel(fmt.Sprintf("%s value name: ", d)).
						SetFieldWidth(24).
						SetDoneFunc(func(key tcell.Key) {
							if key == tcell.KeyEnter {
								name := input.GetText()
								if val, err := view.EnumValue(d, name); err != nil {
									log.Printf("%s.%s rejected: %v", d, name, err)
								} else {
									log.Printf("%s.%s = %d", d, name, val)
								}
							}
							detailColumn.RemoveItem(input)
							resolveInput = nil
							app.SetFocus(ops)
						})
					detailColumn.AddItem(input, 1, 0, false)
					resolveInput = input
					app.SetFocus(input)
				})
			}
			app.SetFocus(ops)
		})
	}

	log.Printf("browsing %d operations as %s", len(view.Operations()), view.Name())

	flex := tview.NewFlex().
		AddItem(families, 0, 1, true).
		AddItem(ops, 0, 2, false).
		AddItem(detailColumn, 0, 2, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(flex, 0, 1, true).
		AddItem(logText, 10, 0, false)

	if err := app.SetRoot(root, true).Run(); err != nil {
		panic(err)
	}
}

func familyTitle(f catalog.Family) string {
	return fmt.Sprintf("%s (%d operations)", f, len(catalog.FamilyOperations(f)))
}

func operationTitle(op string) string {
	code, err := catalog.OperationCode(op)
	if err != nil {
		return op
	}
	return fmt.Sprintf("%s (%#04x)", op, uint16(code))
}

func operationSubtitle(v *views.View, op string) string {
	a, err := v.Arity(op)
	if err != nil {
		return "unpublished"
	}
	n, ok := a.Count()
	if !ok {
		return "unsupported"
	}
	if layout, bound := v.Layout(op); bound {
		if n > 1 {
			return fmt.Sprintf("%s record, %d slots", layout, n)
		}
		return fmt.Sprintf("%s record", layout)
	}
	switch n {
	case 0:
		return "no parameters"
	case 1:
		return "1 parameter"
	default:
		return fmt.Sprintf("%d parameters", n)
	}
}

func renderDetail(detail *tview.TextView, v *views.View, op string) {
	detail.Clear()

	fmt.Fprintf(detail, "%s\n\n", op)
	code, err := catalog.OperationCode(op)
	if err == nil {
		fmt.Fprintf(detail, "code    %#04x\n", uint16(code))
		fmt.Fprintf(detail, "family  %s\n", catalog.FamilyOf(code))
	}
	a, err := v.Arity(op)
	if err != nil {
		fmt.Fprintf(detail, "not published by %s\n", v.Name())
		return
	}
	fmt.Fprintf(detail, "arity   %s\n", a)

	var aliases []string
	for alias, target := range v.OperationAliases() {
		if target == op {
			aliases = append(aliases, alias)
		}
	}
	sort.Strings(aliases)
	if len(aliases) > 0 {
		fmt.Fprintf(detail, "aka     %s\n", strings.Join(aliases, ", "))
	}

	if name, ok := v.Layout(op); ok {
		if layout, err := records.Layout(name); err == nil {
			fmt.Fprintf(detail, "\nlayout %s (%d bytes)\n", layout.Name, layout.Size())
			off := 0
			for _, fld := range layout.Fields {
				sign := "unsigned"
				if fld.Signed {
					sign = "signed"
				}
				fmt.Fprintf(detail, "  %3d  %2d  %-12s %s\n", off, fld.Width, fld.Name, sign)
				off += fld.Width
			}
		}
	}

	if d, ok := operationDomain(op); ok {
		kind, _ := catalog.DomainKind(d)
		names := v.DomainNames(d)
		fmt.Fprintf(detail, "\ndomain %s (%s, %d values)\n", d, kind, len(names))
		for _, name := range names {
			val, err := v.EnumValue(d, name)
			if err != nil {
				continue
			}
			suffix := ""
			if catalog.IsEnumAlias(d, name) {
				suffix = " (alias)"
			}
			if kind == catalog.KindFlag {
				fmt.Fprintf(detail, "  cat %d bit %#08x  %s%s\n", catalog.FlagCategory(val), catalog.FlagMask(val), name, suffix)
				continue
			}
			fmt.Fprintf(detail, "  %10d  %s%s\n", val, name, suffix)
		}
	}
}

// Properties whose published domain name differs from the operation
// name.
var domainOverrides = map[string]catalog.Domain{
	"FilmSimulation": catalog.DomainFilmSim,
	"WBShiftR":       catalog.DomainWBRShift,
	"WBShiftB":       catalog.DomainWBBShift,
}

// operationDomain pairs an operation with the value domain published
// under its property name, when there is one.
func operationDomain(op string) (catalog.Domain, bool) {
	for _, verb := range []string{"Set", "Get", "Cap"} {
		if strings.HasPrefix(op, verb) && len(op) > len(verb) {
			if c := op[len(verb)]; c >= 'A' && c <= 'Z' {
				prop := op[len(verb):]
				if d, ok := domainOverrides[prop]; ok {
					return d, true
				}
				d := catalog.Domain(prop)
				if _, ok := catalog.DomainKind(d); ok {
					return d, true
				}
			}
		}
	}
	return "", false
}
