// Package classify maps component names to categories.
//
// A Classifier runs a fixed chain of stages and the first stage that matches
// decides the category:
//
//  1. exact lookup in the rule table
//  2. prefix match, scanning the table in declaration order
//  3. the "experimental" marker anywhere in the name
//  4. keyword groups, tested in a fixed priority order
//  5. the fallback category Other
package classify

import (
	"fmt"

	"github.com/gnana997/uicatalog/pkg/catalog"
)

// Rule maps one component name to a category.
type Rule struct {
	Key      string
	Category catalog.Category
}

// RuleTable is an ordered sequence of rules. Order is significant for the
// prefix stage, so it is never re-sorted.
type RuleTable struct {
	rules []Rule
	exact map[string]catalog.Category
}

// NewRuleTable validates rules and builds the exact-lookup map.
// Empty keys, duplicate keys and unknown categories are rejected.
func NewRuleTable(rules []Rule) (*RuleTable, error) {
	t := &RuleTable{
		rules: make([]Rule, len(rules)),
		exact: make(map[string]catalog.Category, len(rules)),
	}
	for i, r := range rules {
		if r.Key == "" {
			return nil, fmt.Errorf("rules[%d]: key is required", i)
		}
		if !r.Category.Valid() {
			return nil, fmt.Errorf("rule %q: %w: %q", r.Key, catalog.ErrInvalidCategory, r.Category)
		}
		if _, dup := t.exact[r.Key]; dup {
			return nil, fmt.Errorf("rule %q: duplicate key", r.Key)
		}
		t.rules[i] = r
		t.exact[r.Key] = r.Category
	}
	return t, nil
}

// Rules returns a copy of the table in declaration order.
func (t *RuleTable) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Len returns the number of rules.
func (t *RuleTable) Len() int { return len(t.rules) }

func group(c catalog.Category, keys ...string) []Rule {
	rules := make([]Rule, len(keys))
	for i, k := range keys {
		rules[i] = Rule{Key: k, Category: c}
	}
	return rules
}

// DefaultRules returns the built-in component table in declaration order.
func DefaultRules() []Rule {
	var rules []Rule
	rules = append(rules, group(catalog.CategoryButton,
		"Button", "DropdownMenuButton", "UnstyledButton", "AnchorButton")...)
	rules = append(rules, group(catalog.CategoryInput,
		"Input", "InputFile", "InputWithTooltip", "SearchInput", "CurrencyInput",
		"Select", "Textarea", "Checkbox", "RadioButton", "RadioButtonPanel",
		"Combobox", "MultiCombobox", "SingleCombobox", "Switch",
		"DatePicker", "WarekiPicker", "Calendar", "Picker")...)
	rules = append(rules, group(catalog.CategoryForm,
		"Form", "FormControl", "FormGroup", "Fieldset", "StepFormDialog", "RequiredLabel")...)
	rules = append(rules, group(catalog.CategoryTable,
		"Table", "TableReel", "SpreadsheetTable")...)
	rules = append(rules, group(catalog.CategoryDialog,
		"Dialog", "ActionDialog", "FormDialog", "MessageDialog", "ModelessDialog", "RemoteDialogTrigger")...)
	rules = append(rules, group(catalog.CategoryLayout,
		"Layout", "Base", "BaseColumn", "Center", "Cluster", "Stack", "Sidebar",
		"Container", "Header", "AppHeader", "BottomFixedArea", "FloatArea",
		"SectioningContent", "Reel")...)
	rules = append(rules, group(catalog.CategoryNavigation,
		"AppNavi", "SideNav", "SideMenu", "TabBar", "Pagination", "Breadcrumb",
		"PageCounter", "Stepper", "SegmentedControl", "AppLauncher",
		"LanguageSwitcher", "UpwardLink")...)
	rules = append(rules, group(catalog.CategoryFeedback,
		"Tooltip", "Balloon", "Flash", "InformationPanel", "NotificationBar",
		"ResponseMessage", "HelpLink", "ErrorScreen")...)
	rules = append(rules, group(catalog.CategoryDisplay,
		"Loader", "Badge", "StatusLabel", "Text", "TextLink", "Heading", "Chip",
		"Icon", "SmartHRLogo", "SmartHRAILogo", "Timeline", "DefinitionList",
		"LineClamp", "VisuallyHiddenText", "RangeSeparator")...)
	rules = append(rules, group(catalog.CategoryInteractive,
		"Disclosure", "AccordionPanel", "Dropdown", "FilterDropdown", "SortDropdown",
		"DropZone", "FileViewer", "Browser")...)
	rules = append(rules, group(catalog.CategoryExperimental, "Experimental")...)
	return rules
}

// KeywordGroup maps case-insensitive name fragments to a category.
type KeywordGroup struct {
	Category catalog.Category
	Contains []string
	Suffixes []string
}

// DefaultKeywordGroups returns the built-in groups in priority order.
func DefaultKeywordGroups() []KeywordGroup {
	return []KeywordGroup{
		{Category: catalog.CategoryButton, Contains: []string{"button"}, Suffixes: []string{"btn"}},
		{Category: catalog.CategoryInput, Contains: []string{"input", "field", "picker", "select", "combobox", "switch", "checkbox", "radio"}},
		{Category: catalog.CategoryDialog, Contains: []string{"dialog", "modal", "popup"}},
		{Category: catalog.CategoryTable, Contains: []string{"table", "grid", "spreadsheet"}},
		{Category: catalog.CategoryNavigation, Contains: []string{"nav", "menu", "breadcrumb", "pagination", "stepper", "tab"}},
		{Category: catalog.CategoryFeedback, Contains: []string{"tooltip", "balloon", "notification", "alert", "flash", "message"}},
		{Category: catalog.CategoryInteractive, Contains: []string{"dropdown", "disclosure", "accordion", "collapse", "viewer", "dropzone"}},
		{Category: catalog.CategoryLayout, Contains: []string{"layout", "container", "wrapper", "header", "footer", "area", "section", "stack", "cluster"}},
		{Category: catalog.CategoryDisplay, Contains: []string{"text", "heading", "label", "badge", "chip", "icon", "logo", "loader", "spinner"}},
	}
}
