/*
Package conf is a helper for jobshop configuration for both the command line
interface and environment variables.
It gives the ability to register arguments which will be fetched from
CLI input OR environment variables.
By default it registers the following option:
<JOBSHOP_LOG> --log <Log level: debug, info, warn, error, fatal, panic> Default: error

When `ParseEnv` is executed, only the environment arguments are parsed and
ready to be used in flag variables.

When `ParseFlags` is executed, the arguments from both CLI and Env are parsed.
In case of the --help option it prints help. It is recommended to run it only
once, after all packages have registered their options, so that help shows the
whole overview of the jobshop configuration.
*/
package conf
