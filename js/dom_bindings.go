package js

import (
	"errors"

	"github.com/chrisuehlinger/domtree/dom"
	"github.com/dop251/goja"
)

// DOMBinder exposes dom nodes to JavaScript.
type DOMBinder struct {
	runtime *Runtime
	nodeMap map[*dom.Node]*goja.Object // Cache to return same JS object for same DOM node
}

// NewDOMBinder creates a new DOM binder for the given runtime and installs
// the global node factories createElement, createTextNode and createComment.
func NewDOMBinder(runtime *Runtime) *DOMBinder {
	b := &DOMBinder{
		runtime: runtime,
		nodeMap: make(map[*dom.Node]*goja.Object),
	}
	b.setupFactories()
	return b
}

// BindDocument binds doc and makes it available as the global "document".
func (b *DOMBinder) BindDocument(doc *dom.Node) *goja.Object {
	jsDoc := b.BindNode(doc)
	b.runtime.SetDocument(jsDoc)
	return jsDoc
}

// ClearCache drops every cached binding, releasing the nodes they refer to.
func (b *DOMBinder) ClearCache() {
	b.nodeMap = make(map[*dom.Node]*goja.Object)
}

func (b *DOMBinder) setupFactories() {
	vm := b.runtime.vm

	vm.Set("createElement", func(call goja.FunctionCall) goja.Value {
		name := call.Argument(0).String()
		return b.BindNode(dom.NewElement(dom.HTMLName(name)))
	})
	vm.Set("createTextNode", func(call goja.FunctionCall) goja.Value {
		return b.BindNode(dom.NewText(call.Argument(0).String()))
	})
	vm.Set("createComment", func(call goja.FunctionCall) goja.Value {
		return b.BindNode(dom.NewComment(call.Argument(0).String()))
	})
}

// BindNode creates, or returns the cached, JavaScript object for node.
func (b *DOMBinder) BindNode(node *dom.Node) *goja.Object {
	if node == nil {
		return nil
	}

	// Check cache
	if jsObj, ok := b.nodeMap[node]; ok {
		return jsObj
	}

	vm := b.runtime.vm
	jsNode := vm.NewObject()
	jsNode.Set("_goNode", node)
	jsNode.Set("nodeType", int(node.NodeType()))
	jsNode.Set("nodeName", nodeName(node))

	b.bindNodeProperties(jsNode, node)

	switch node.NodeType() {
	case dom.ElementNode:
		b.bindElement(jsNode, node.AsElement())
	case dom.TextNode:
		b.bindContents(jsNode, node.AsText())
	case dom.CommentNode:
		b.bindContents(jsNode, node.AsComment())
	case dom.DocumentTypeNode:
		dt := node.AsDoctype()
		jsNode.Set("name", dt.Name())
		jsNode.Set("publicId", dt.PublicID())
		jsNode.Set("systemId", dt.SystemID())
	case dom.DocumentNode:
		data := node.AsDocument()
		jsNode.DefineAccessorProperty("quirksMode", vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return vm.ToValue(data.QuirksMode().String())
		}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	}

	// Cache the binding
	b.nodeMap[node] = jsNode
	return jsNode
}

func nodeName(node *dom.Node) string {
	switch node.NodeType() {
	case dom.ElementNode:
		return node.AsElement().Name().Local
	case dom.TextNode:
		return "#text"
	case dom.CommentNode:
		return "#comment"
	case dom.DocumentNode:
		return "#document"
	case dom.DocumentTypeNode:
		return node.AsDoctype().Name()
	default:
		return ""
	}
}

// bindNodeProperties installs navigation accessors and mutation methods.
func (b *DOMBinder) bindNodeProperties(jsObj *goja.Object, node *dom.Node) {
	vm := b.runtime.vm

	link := func(name string, get func() *dom.Node) {
		jsObj.DefineAccessorProperty(name, vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return b.nodeValue(get())
		}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	}
	link("parentNode", node.Parent)
	link("firstChild", node.FirstChild)
	link("lastChild", node.LastChild)
	link("previousSibling", node.PreviousSibling)
	link("nextSibling", node.NextSibling)

	jsObj.DefineAccessorProperty("childNodes", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		var children []any
		for c := range node.Children() {
			children = append(children, b.BindNode(c))
		}
		return vm.NewArray(children...)
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.DefineAccessorProperty("textContent", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(node.TextContents())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	jsObj.Set("hasChildNodes", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(node.HasChildren())
	})

	mutation := func(name string, op func(*dom.Node) error) {
		jsObj.Set(name, func(call goja.FunctionCall) goja.Value {
			arg := b.nodeArgument(name, call.Argument(0))
			if err := op(arg); err != nil {
				b.throwError(err)
			}
			return b.BindNode(arg)
		})
	}
	mutation("appendChild", node.AppendChecked)
	mutation("prepend", node.PrependChecked)

	// before and after do nothing on a node without a parent.
	sibling := func(name string, op func(*dom.Node) error) {
		jsObj.Set(name, func(call goja.FunctionCall) goja.Value {
			arg := b.nodeArgument(name, call.Argument(0))
			if node.Parent() == nil {
				return goja.Undefined()
			}
			if err := op(arg); err != nil {
				b.throwError(err)
			}
			return goja.Undefined()
		})
	}
	sibling("before", node.InsertBeforeChecked)
	sibling("after", node.InsertAfterChecked)

	jsObj.Set("remove", func(call goja.FunctionCall) goja.Value {
		node.Detach()
		return goja.Undefined()
	})
}

// bindElement adds element-specific properties.
func (b *DOMBinder) bindElement(jsObj *goja.Object, el *dom.ElementData) {
	vm := b.runtime.vm
	name := el.Name()
	jsObj.Set("localName", name.Local)
	jsObj.Set("namespaceURI", name.Namespace)

	jsObj.Set("getAttribute", func(call goja.FunctionCall) goja.Value {
		v, ok := el.Attribute(dom.AttrName(call.Argument(0).String()))
		if !ok {
			return goja.Null()
		}
		return vm.ToValue(v)
	})
	jsObj.Set("hasAttribute", func(call goja.FunctionCall) goja.Value {
		_, ok := el.Attribute(dom.AttrName(call.Argument(0).String()))
		return vm.ToValue(ok)
	})
	jsObj.Set("setAttribute", func(call goja.FunctionCall) goja.Value {
		el.SetAttribute(dom.AttrName(call.Argument(0).String()), call.Argument(1).String())
		return goja.Undefined()
	})
	jsObj.Set("removeAttribute", func(call goja.FunctionCall) goja.Value {
		el.RemoveAttribute(dom.AttrName(call.Argument(0).String()))
		return goja.Undefined()
	})
}

// bindContents adds the read/write "data" property of text and comments.
func (b *DOMBinder) bindContents(jsObj *goja.Object, contents *dom.Contents) {
	vm := b.runtime.vm
	jsObj.DefineAccessorProperty("data", vm.ToValue(func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(contents.String())
	}), vm.ToValue(func(call goja.FunctionCall) goja.Value {
		contents.Set(call.Argument(0).String())
		return goja.Undefined()
	}), goja.FLAG_FALSE, goja.FLAG_TRUE)
	jsObj.Set("appendData", func(call goja.FunctionCall) goja.Value {
		contents.Append(call.Argument(0).String())
		return goja.Undefined()
	})
}

func (b *DOMBinder) nodeValue(node *dom.Node) goja.Value {
	if node == nil {
		return goja.Null()
	}
	return b.BindNode(node)
}

// nodeArgument unwraps a bound node passed to method, throwing a TypeError
// for anything else.
func (b *DOMBinder) nodeArgument(method string, v goja.Value) *dom.Node {
	vm := b.runtime.vm
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		panic(vm.NewTypeError("Failed to execute '%s': parameter 1 is not of type 'Node'.", method))
	}
	if node := b.getGoNode(v.ToObject(vm)); node != nil {
		return node
	}
	panic(vm.NewTypeError("Failed to execute '%s': parameter 1 is not of type 'Node'.", method))
}

func (b *DOMBinder) getGoNode(obj *goja.Object) *dom.Node {
	if obj == nil {
		return nil
	}
	if v := obj.Get("_goNode"); v != nil && !goja.IsUndefined(v) && !goja.IsNull(v) {
		if node, ok := v.Export().(*dom.Node); ok {
			return node
		}
	}
	return nil
}

// throwError throws a DOMError as a JavaScript object with name and message.
func (b *DOMBinder) throwError(err error) {
	vm := b.runtime.vm
	var domErr *dom.DOMError
	if !errors.As(err, &domErr) {
		panic(vm.NewGoError(err))
	}
	exc := vm.NewObject()
	exc.Set("name", domErr.Name)
	exc.Set("message", domErr.Message)
	panic(vm.ToValue(exc))
}
