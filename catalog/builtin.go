package catalog

var alignments = []string{"start", "center", "end", "spaceBetween", "spaceAround", "spaceEvenly"}

// Builtin is the fixed widget palette. Kinds, capability flags, and
// defaults mirror what the generation backend understands.
func Builtin() *Registry {
	return newRegistry(
		&Definition{
			Kind: "Scaffold", Name: "Scaffold", Category: Layout, CanHaveChildren: true,
			Properties: []Property{
				{Name: "backgroundColor", Label: "Background color", Type: ColorValue, Default: "#FFFFFF"},
			},
		},
		&Definition{
			// Nominally a container, but the containment rules treat it
			// as self-contained chrome that accepts no children.
			Kind: "AppBar", Name: "App bar", Category: Layout, CanHaveChildren: true,
			Properties: []Property{
				{Name: "title", Label: "Title", Type: StringValue, Default: "My App"},
				{Name: "backgroundColor", Label: "Background color", Type: ColorValue, Default: "#2196F3"},
				{Name: "centerTitle", Label: "Center title", Type: BooleanValue, Default: false},
			},
		},
		&Definition{
			Kind: "Container", Name: "Container", Category: Layout, CanHaveChildren: true,
			Properties: []Property{
				{Name: "width", Label: "Width", Type: NumberValue},
				{Name: "height", Label: "Height", Type: NumberValue},
				{Name: "color", Label: "Color", Type: ColorValue},
				{Name: "padding", Label: "Padding", Type: NumberValue, Default: float64(8)},
				{Name: "alignment", Label: "Alignment", Type: EnumValue, Default: "center", Options: alignments},
			},
		},
		&Definition{
			Kind: "Row", Name: "Row", Category: Layout, CanHaveChildren: true,
			Properties: []Property{
				{Name: "mainAxisAlignment", Label: "Main axis", Type: EnumValue, Default: "start", Options: alignments},
				{Name: "crossAxisAlignment", Label: "Cross axis", Type: EnumValue, Default: "center", Options: alignments},
			},
		},
		&Definition{
			Kind: "Column", Name: "Column", Category: Layout, CanHaveChildren: true,
			Properties: []Property{
				{Name: "mainAxisAlignment", Label: "Main axis", Type: EnumValue, Default: "start", Options: alignments},
				{Name: "crossAxisAlignment", Label: "Cross axis", Type: EnumValue, Default: "center", Options: alignments},
			},
		},
		&Definition{
			Kind: "Stack", Name: "Stack", Category: Layout, CanHaveChildren: true,
			Properties: []Property{
				{Name: "alignment", Label: "Alignment", Type: EnumValue, Default: "center", Options: alignments},
			},
		},
		&Definition{
			// Scroll container; the containment rules always allow item
			// injection here.
			Kind: "ListView", Name: "List view", Category: Layout, CanHaveChildren: true,
			Properties: []Property{
				{Name: "scrollDirection", Label: "Scroll direction", Type: EnumValue, Default: "vertical", Options: []string{"vertical", "horizontal"}},
				{Name: "shrinkWrap", Label: "Shrink wrap", Type: BooleanValue, Default: false},
			},
		},
		&Definition{
			Kind: "Card", Name: "Card", Category: Layout, CanHaveChildren: true,
			Properties: []Property{
				{Name: "elevation", Label: "Elevation", Type: NumberValue, Default: float64(1)},
				{Name: "color", Label: "Color", Type: ColorValue, Default: "#FFFFFF"},
			},
		},
		&Definition{
			Kind: "SizedBox", Name: "Sized box", Category: Layout, CanHaveChildren: false,
			Properties: []Property{
				{Name: "width", Label: "Width", Type: NumberValue, Default: float64(16)},
				{Name: "height", Label: "Height", Type: NumberValue, Default: float64(16)},
			},
		},
		&Definition{
			Kind: "Text", Name: "Text", Category: Content, CanHaveChildren: false,
			Properties: []Property{
				{Name: "text", Label: "Text", Type: StringValue, Default: "Hello World"},
				{Name: "fontSize", Label: "Font size", Type: NumberValue, Default: float64(14)},
				{Name: "color", Label: "Color", Type: ColorValue, Default: "#000000"},
				{Name: "fontWeight", Label: "Weight", Type: EnumValue, Default: "normal", Options: []string{"normal", "bold"}},
			},
		},
		&Definition{
			Kind: "Image", Name: "Image", Category: Content, CanHaveChildren: false,
			Properties: []Property{
				{Name: "url", Label: "Source URL", Type: StringValue, Default: ""},
				{Name: "fit", Label: "Fit", Type: EnumValue, Default: "cover", Options: []string{"cover", "contain", "fill"}},
				{Name: "width", Label: "Width", Type: NumberValue},
				{Name: "height", Label: "Height", Type: NumberValue},
			},
		},
		&Definition{
			Kind: "Icon", Name: "Icon", Category: Content, CanHaveChildren: false,
			Properties: []Property{
				{Name: "name", Label: "Icon name", Type: StringValue, Default: "star"},
				{Name: "size", Label: "Size", Type: NumberValue, Default: float64(24)},
				{Name: "color", Label: "Color", Type: ColorValue, Default: "#000000"},
			},
		},
		&Definition{
			Kind: "Button", Name: "Button", Category: Input, CanHaveChildren: false,
			Properties: []Property{
				{Name: "label", Label: "Label", Type: StringValue, Default: "Button"},
				{Name: "color", Label: "Color", Type: ColorValue, Default: "#2196F3"},
				{Name: "textColor", Label: "Text color", Type: ColorValue, Default: "#FFFFFF"},
				{Name: "action", Label: "Tap action", Type: ObjectValue, Default: map[string]interface{}{"type": "none"}},
			},
		},
		&Definition{
			Kind: "TextField", Name: "Text field", Category: Input, CanHaveChildren: false,
			Properties: []Property{
				{Name: "label", Label: "Label", Type: StringValue, Default: ""},
				{Name: "hint", Label: "Hint", Type: StringValue, Default: ""},
				{Name: "obscure", Label: "Obscure input", Type: BooleanValue, Default: false},
			},
		},
		&Definition{
			Kind: "Checkbox", Name: "Checkbox", Category: Input, CanHaveChildren: false,
			Properties: []Property{
				{Name: "label", Label: "Label", Type: StringValue, Default: ""},
				{Name: "value", Label: "Checked", Type: BooleanValue, Default: false},
			},
		},
	)
}
