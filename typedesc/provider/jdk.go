package provider

// jdkKind records what is known about a JDK type declaration.
type jdkKind int

const (
	jdkClass jdkKind = iota
	jdkAbstract
	jdkInterface
)

// javaLang lists the java.lang types that are visible without an import.
var javaLang = map[string]jdkKind{
	"Object":           jdkClass,
	"String":           jdkClass,
	"Boolean":          jdkClass,
	"Byte":             jdkClass,
	"Short":            jdkClass,
	"Integer":          jdkClass,
	"Long":             jdkClass,
	"Character":        jdkClass,
	"Float":            jdkClass,
	"Double":           jdkClass,
	"Void":             jdkClass,
	"Number":           jdkAbstract,
	"Class":            jdkClass,
	"Enum":             jdkAbstract,
	"Record":           jdkAbstract,
	"Math":             jdkClass,
	"System":           jdkClass,
	"Thread":           jdkClass,
	"ThreadLocal":      jdkClass,
	"StringBuilder":    jdkClass,
	"StringBuffer":     jdkClass,
	"Throwable":        jdkClass,
	"Exception":        jdkClass,
	"RuntimeException": jdkClass,
	"Error":            jdkClass,
	"Iterable":         jdkInterface,
	"Comparable":       jdkInterface,
	"CharSequence":     jdkInterface,
	"Runnable":         jdkInterface,
	"AutoCloseable":    jdkInterface,
	"Cloneable":        jdkInterface,
}

// jdkTypes holds declaration kinds of commonly referenced JDK types
// outside java.lang, keyed by canonical name.
var jdkTypes = map[string]jdkKind{
	"java.util.Collection":    jdkInterface,
	"java.util.List":          jdkInterface,
	"java.util.Set":           jdkInterface,
	"java.util.SortedSet":     jdkInterface,
	"java.util.NavigableSet":  jdkInterface,
	"java.util.Queue":         jdkInterface,
	"java.util.Deque":         jdkInterface,
	"java.util.Map":           jdkInterface,
	"java.util.Map.Entry":     jdkInterface,
	"java.util.SortedMap":     jdkInterface,
	"java.util.NavigableMap":  jdkInterface,
	"java.util.Iterator":      jdkInterface,
	"java.util.Comparator":    jdkInterface,
	"java.util.AbstractList":  jdkAbstract,
	"java.util.AbstractSet":   jdkAbstract,
	"java.util.AbstractMap":   jdkAbstract,
	"java.util.AbstractQueue": jdkAbstract,
	"java.util.Calendar":      jdkAbstract,

	"java.util.concurrent.Future":   jdkInterface,
	"java.util.concurrent.Callable": jdkInterface,
	"java.util.function.Function":   jdkInterface,
	"java.util.function.BiFunction": jdkInterface,
	"java.util.function.Supplier":   jdkInterface,
	"java.util.function.Consumer":   jdkInterface,
	"java.util.function.Predicate":  jdkInterface,
	"java.util.stream.Stream":       jdkInterface,

	"java.io.Closeable":           jdkInterface,
	"java.io.Serializable":        jdkInterface,
	"java.io.InputStream":         jdkAbstract,
	"java.io.OutputStream":        jdkAbstract,
	"java.io.Reader":              jdkAbstract,
	"java.io.Writer":              jdkAbstract,
	"java.nio.file.Path":          jdkInterface,
	"java.time.temporal.Temporal": jdkInterface,
}

func init() {
	for name, kind := range javaLang {
		jdkTypes["java.lang."+name] = kind
	}
}
